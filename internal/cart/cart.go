package cart

import "github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"

// Line is one product in a cart with the details captured when it was added.
type Line struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	DiscountPrice int              `json:"discountPrice"`
	Price         int              `json:"price"`
	Image         string           `json:"image"`
	Brand         string           `json:"brand"`
	Category      catalog.Category `json:"category"`
	Quantity      int              `json:"quantity"`
}

func (l Line) key() string {
	return catalog.Key(l.Category, l.ID)
}

func lineFromItem(it catalog.Item, qty int) Line {
	return Line{
		ID:            it.ID,
		Title:         it.Title,
		DiscountPrice: it.DiscountPrice,
		Price:         it.Price,
		Image:         it.Image,
		Brand:         it.Brand,
		Category:      it.Category,
		Quantity:      qty,
	}
}

// Cart is the response body for every cart endpoint.
type Cart struct {
	Items []Line `json:"items"`
	// Count is the total quantity across lines.
	Count    int `json:"count"`
	Subtotal int `json:"subtotal"`
	Total    int `json:"total"`
}

func newCart(lines []Line) Cart {
	c := Cart{Items: lines}
	if c.Items == nil {
		c.Items = []Line{}
	}
	for _, l := range c.Items {
		c.Count += l.Quantity
		c.Subtotal += l.Price * l.Quantity
		c.Total += l.DiscountPrice * l.Quantity
	}
	return c
}

// ItemRef names a catalog item to add.
type ItemRef struct {
	Category catalog.Category `json:"category" validate:"required"`
	ID       string           `json:"id" validate:"required"`
}
