package domain

import "time"

type Product struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	ImageURL    string     `db:"image_url"`
	Price       float64    `db:"price"`
	Categories  []Category `db:"-"`
}

type Category struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"creation_date"`
}

// ProductCategory is a product_category row joined with its category.
type ProductCategory struct {
	ProductID string `db:"product_id"`
	Category
}
