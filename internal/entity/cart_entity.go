package entity

import (
	"time"

	"github.com/google/uuid"
)

type CartItemKind string

const (
	CartItemProduct CartItemKind = "product"
	CartItemBundle  CartItemKind = "bundle"
)

// CartItem is one line in a user's cart. Selected marks the line for the next
// checkout; unselected lines stay in the cart untouched.
type CartItem struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Kind      CartItemKind
	ProductId *uuid.UUID
	BundleId  *uuid.UUID
	Size      string
	Quantity  int
	Selected  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *Product
	Bundle  *Bundle
}

// UnitPrice resolves the current price of the referenced catalog item.
func (c CartItem) UnitPrice() float64 {
	if c.Kind == CartItemBundle && c.Bundle != nil {
		return c.Bundle.Price
	}
	if c.Product != nil {
		return c.Product.Price
	}
	return 0
}

// Subtotal is the line total at current catalog prices.
func (c CartItem) Subtotal() float64 {
	return c.UnitPrice() * float64(c.Quantity)
}
