package dto

import (
	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	Kind      string     `json:"kind" validate:"required,oneof=product bundle"`
	ProductId *uuid.UUID `json:"product_id,omitempty"`
	BundleId  *uuid.UUID `json:"bundle_id,omitempty"`
	Size      string     `json:"size,omitempty"`
	Quantity  int        `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity *int  `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Selected *bool `json:"selected,omitempty"`
}

type CartItemResponse struct {
	Id        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Size      string    `json:"size,omitempty"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
	Selected  bool      `json:"selected"`
	ImageURL  string    `json:"image_url,omitempty"`
}

type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	SelectedTotal float64            `json:"selected_total"`
	ItemCount     int                `json:"item_count"`
}
