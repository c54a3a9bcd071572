package domain

import "context"

type Product struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image,omitempty"`
	InStock     bool     `json:"in_stock"`
	Sizes       []string `json:"sizes,omitempty"`
}

// ProductFilter narrows a listing query. A zero filter matches everything.
type ProductFilter struct {
	Category string
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) (string, error)
	ListProducts(ctx context.Context, filter ProductFilter, limit int64) ([]Product, error)
	// GetProductsByIDs fetches all products whose store key is in ids with a
	// single query. Unknown ids are silently skipped; a malformed id is an error.
	GetProductsByIDs(ctx context.Context, ids []string) ([]Product, error)
}
