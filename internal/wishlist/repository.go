package wishlist

import (
	"errors"
	"sync"
)

var (
	ErrAlreadyInWishlist = errors.New("item already in wishlist")
	ErrNotInWishlist     = errors.New("item not in wishlist")
)

// Repository stores each user's wishlist as ordered item keys
// ("category:id").
type Repository interface {
	Keys(userID int) ([]string, error)
	Add(userID int, key string, updatedAt string) ([]string, error)
	Remove(userID int, key string, updatedAt string) ([]string, error)
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	lists map[int][]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{lists: make(map[int][]string)}
}

func (r *InMemoryRepository) Keys(userID int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(userID), nil
}

func (r *InMemoryRepository) Add(userID int, key string, _ string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, k := range r.lists[userID] {
		if k == key {
			return nil, ErrAlreadyInWishlist
		}
	}
	r.lists[userID] = append(r.lists[userID], key)
	return r.snapshot(userID), nil
}

func (r *InMemoryRepository) Remove(userID int, key string, _ string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.lists[userID]
	for i, k := range list {
		if k == key {
			r.lists[userID] = append(list[:i:i], list[i+1:]...)
			return r.snapshot(userID), nil
		}
	}
	return nil, ErrNotInWishlist
}

func (r *InMemoryRepository) snapshot(userID int) []string {
	out := make([]string, len(r.lists[userID]))
	copy(out, r.lists[userID])
	return out
}
