package order

import (
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/address"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/cart"
)

const (
	StatusPlaced = "placed"

	// Orders at or above this total ship free; the rest pay FlatShipping.
	FreeShippingThreshold = 10000
	FlatShipping          = 499
)

// Order is a snapshot of a cart at checkout. Prices are in rupees.
type Order struct {
	OrderID       int64       `json:"orderId"`
	Items         []cart.Line `json:"items"`
	Quantity      int         `json:"quantity"`
	TotalPrice    int         `json:"totalPrice"`
	ShippingPrice int         `json:"shippingPrice"`
	GrandPrice    int         `json:"grandPrice"`
	Status        string      `json:"status"`
	// ShippingAddress is a copy taken at checkout; later edits to the
	// address book do not change placed orders.
	ShippingAddress *address.Address `json:"shippingAddress,omitempty"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`
}

func shippingFor(total int) int {
	if total >= FreeShippingThreshold {
		return 0
	}
	return FlatShipping
}

func fromCart(c cart.Cart, at string) Order {
	shipping := shippingFor(c.Total)
	return Order{
		Items:         c.Items,
		Quantity:      c.Count,
		TotalPrice:    c.Total,
		ShippingPrice: shipping,
		GrandPrice:    c.Total + shipping,
		Status:        StatusPlaced,
		CreatedAt:     at,
		UpdatedAt:     at,
	}
}
