package catalog

import "sync"

type Repository interface {
	List() ([]Item, error)
	ListByCategory(cat Category) ([]Item, error)
	Get(cat Category, id string) (Item, error)
	// GetMany returns the items for keys ("category:id") in key order,
	// skipping keys that no longer exist.
	GetMany(keys []string) ([]Item, error)
	Create(it Item) (Item, error)
	Update(cat Category, id string, it Item) (Item, error)
	Delete(cat Category, id string) error
	// Reset replaces the whole catalog (used for dev / seeding).
	Reset(items []Item) error
}

// InMemoryRepository keeps items in declaration order. Used for tests and
// when no database is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Item
}

func NewInMemoryRepository(seed []Item) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Item, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) ListByCategory(cat Category) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0)
	for _, it := range r.storage {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Get(cat Category, id string) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.storage {
		if it.Category == cat && it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) GetMany(keys []string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byKey := make(map[string]Item, len(r.storage))
	for _, it := range r.storage {
		byKey[it.Key()] = it
	}
	out := make([]Item, 0, len(keys))
	for _, k := range keys {
		if it, ok := byKey[k]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(it Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.storage {
		if existing.Category == it.Category && existing.ID == it.ID {
			return Item{}, ErrDuplicate
		}
	}
	r.storage = append(r.storage, it)
	return it, nil
}

// Update keeps the item's position in the catalog order.
func (r *InMemoryRepository) Update(cat Category, id string, it Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].Category == cat && r.storage[i].ID == id {
			it.Category = cat
			it.ID = id
			r.storage[i] = it
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(cat Category, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].Category == cat && r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Reset(items []Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Item, 0, len(items))
	r.storage = append(r.storage, items...)
	return nil
}
