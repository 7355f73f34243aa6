package dto

type CategoryRequest struct {
	ID   *int64 `json:"id"`
	Name string `json:"name" validate:"required"`
}

type ProductRequest struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Price       *float64          `json:"price" validate:"required,gte=0"`
	Categories  []CategoryRequest `json:"categories" validate:"omitempty,dive"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
