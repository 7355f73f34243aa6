package dto

// StockRequest is the body the stock service expects on POST /stock.
type StockRequest struct {
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
	RelationID string `json:"relationId"`
}
