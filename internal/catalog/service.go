package catalog

import "strings"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Filter narrows List results; empty fields match everything.
type Filter struct {
	Category Category
	Tier     Tier
	Brand    string
}

func (s *Service) List(f Filter) ([]Item, error) {
	var (
		items []Item
		err   error
	)
	if f.Category != "" {
		items, err = s.repo.ListByCategory(f.Category)
	} else {
		items, err = s.repo.List()
	}
	if err != nil {
		return nil, err
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Tier != "" && it.Tier != f.Tier {
			continue
		}
		if f.Brand != "" && !strings.EqualFold(it.Brand, f.Brand) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *Service) Get(cat Category, id string) (Item, error) {
	return s.repo.Get(cat, id)
}

func (s *Service) GetMany(keys []string) ([]Item, error) {
	return s.repo.GetMany(keys)
}

func (s *Service) Create(it Item) (Item, error) {
	return s.repo.Create(it)
}

func (s *Service) Update(cat Category, id string, it Item) (Item, error) {
	return s.repo.Update(cat, id, it)
}

func (s *Service) Delete(cat Category, id string) error {
	return s.repo.Delete(cat, id)
}

// ResetCatalog replaces all items with the given list (used for dev / seeding).
func (s *Service) ResetCatalog(items []Item) error {
	return s.repo.Reset(items)
}

// Snapshot returns a validated read-only view of the current catalog.
func (s *Service) Snapshot() (*Catalog, error) {
	items, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	c := New(items)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// CategorySummary is returned by the categories endpoint.
type CategorySummary struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
	MinPrice int      `json:"minPrice"`
	MaxPrice int      `json:"maxPrice"`
}

func (s *Service) Categories() ([]CategorySummary, error) {
	items, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	c := New(items)
	out := make([]CategorySummary, 0, len(Categories))
	for _, cat := range Categories {
		sum := CategorySummary{Category: cat}
		for i, it := range c.Items(cat) {
			sum.Count++
			if i == 0 || it.DiscountPrice < sum.MinPrice {
				sum.MinPrice = it.DiscountPrice
			}
			if it.DiscountPrice > sum.MaxPrice {
				sum.MaxPrice = it.DiscountPrice
			}
		}
		out = append(out, sum)
	}
	return out, nil
}
