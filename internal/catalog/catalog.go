package catalog

import "fmt"

// Catalog is a read-only snapshot of the items for sale, grouped by category.
// Declaration order within a category is preserved and is significant:
// "first match" lookups in the recommender walk items in this order.
type Catalog struct {
	byCategory map[Category][]Item
}

// New builds a snapshot from items. Items with an unknown category are
// dropped. The input slice is copied.
func New(items []Item) *Catalog {
	c := &Catalog{byCategory: make(map[Category][]Item, len(Categories))}
	for _, it := range items {
		if _, err := ParseCategory(string(it.Category)); err != nil {
			continue
		}
		c.byCategory[it.Category] = append(c.byCategory[it.Category], it)
	}
	return c
}

// Items returns a copy of the category's items in catalog order.
func (c *Catalog) Items(cat Category) []Item {
	src := c.byCategory[cat]
	out := make([]Item, len(src))
	copy(out, src)
	return out
}

// All returns every item, categories in display order.
func (c *Catalog) All() []Item {
	out := make([]Item, 0)
	for _, cat := range Categories {
		out = append(out, c.byCategory[cat]...)
	}
	return out
}

func (c *Catalog) Find(cat Category, id string) (Item, bool) {
	for _, it := range c.byCategory[cat] {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Validate reports a configuration error when any category is empty.
func (c *Catalog) Validate() error {
	for _, cat := range Categories {
		if len(c.byCategory[cat]) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyCategory, cat)
		}
	}
	return nil
}
