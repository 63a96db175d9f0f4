package wishlist

import (
	"time"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
)

// ItemLookup resolves wishlist keys against the catalog.
type ItemLookup interface {
	Get(cat catalog.Category, id string) (catalog.Item, error)
	GetMany(keys []string) ([]catalog.Item, error)
}

type Service struct {
	repo  Repository
	items ItemLookup
	now   func() time.Time
}

func NewService(repo Repository, items ItemLookup) *Service {
	return &Service{repo: repo, items: items, now: time.Now}
}

// List returns the wishlisted items in the order they were added. Items
// removed from the catalog since are skipped.
func (s *Service) List(userID int) ([]catalog.Item, error) {
	keys, err := s.repo.Keys(userID)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []catalog.Item{}, nil
	}
	return s.items.GetMany(keys)
}

// Add wishlists an existing catalog item and returns the updated keys.
func (s *Service) Add(userID int, cat catalog.Category, id string) ([]string, error) {
	if _, err := s.items.Get(cat, id); err != nil {
		return nil, err
	}
	return s.repo.Add(userID, catalog.Key(cat, id), s.timestamp())
}

func (s *Service) Remove(userID int, cat catalog.Category, id string) ([]string, error) {
	return s.repo.Remove(userID, catalog.Key(cat, id), s.timestamp())
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
