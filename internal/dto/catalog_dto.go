package dto

import (
	"time"

	"github.com/google/uuid"
)

type CategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
}

type ProductResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	Category    string    `json:"category,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Sizes       []string  `json:"sizes,omitempty"`
	Colors      []string  `json:"colors,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	SalesCount  int       `json:"sales_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type BundleItemResponse struct {
	ProductId uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
}

type BundleResponse struct {
	Id          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Slug        string               `json:"slug"`
	Description string               `json:"description,omitempty"`
	Price       float64              `json:"price"`
	Stock       int                  `json:"stock"`
	ImageURL    string               `json:"image_url,omitempty"`
	Items       []BundleItemResponse `json:"items"`
}

// ProductListQuery captures storefront browse filters.
type ProductListQuery struct {
	Category string `query:"category"`
	Brand    string `query:"brand"`
	Search   string `query:"q"`
	Sort     string `query:"sort"` // newest, price_asc, price_desc, best_selling
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

type SuggestionResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}
