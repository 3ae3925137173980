package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products for storefront browsing (e.g. "Dresses", "Shoes").
type Category struct {
	Id          uuid.UUID
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}

// Product is a single catalog item.
type Product struct {
	Id          uuid.UUID
	CategoryId  uuid.UUID
	Name        string
	Slug        string
	Description string
	Brand       string
	Price       float64
	Stock       int
	Sizes       []string
	Colors      []string
	ImageURL    string
	IsActive    bool
	SalesCount  int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category Category
}

// Bundle is a multi-product package sold as one catalog item with its own
// price and stock, independent of the member products' prices.
type Bundle struct {
	Id          uuid.UUID
	Name        string
	Slug        string
	Description string
	Price       float64
	Stock       int
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []BundleItem
}

// BundleItem is one product inside a bundle.
type BundleItem struct {
	Id        uuid.UUID
	BundleId  uuid.UUID
	ProductId uuid.UUID
	Quantity  int

	Product Product
}
