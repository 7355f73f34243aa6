package dto

type StockRequest struct {
	Name       string `json:"name" validate:"required"`
	Quantity   *int64 `json:"quantity" validate:"required,gte=0"`
	RelationID string `json:"relationId" validate:"required"`
}

type StockQuantityRequest struct {
	Stock *int64 `json:"stock" validate:"required,gte=0"`
}
