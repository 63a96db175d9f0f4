package cart

import (
	"errors"
	"sync"
)

var (
	ErrInvalidUser = errors.New("invalid user")
	ErrEmptyCart   = errors.New("cart is empty")
)

// Repository persists each user's cart lines in display order.
type Repository interface {
	GetLines(userID int) ([]Line, error)
	SaveLines(userID int, lines []Line, updatedAt string) error
	Clear(userID int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[int][]Line
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[int][]Line)}
}

func (r *InMemoryRepository) GetLines(userID int) ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Line, len(r.carts[userID]))
	copy(out, r.carts[userID])
	return out, nil
}

func (r *InMemoryRepository) SaveLines(userID int, lines []Line, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(lines) == 0 {
		delete(r.carts, userID)
		return nil
	}
	stored := make([]Line, len(lines))
	copy(stored, lines)
	r.carts[userID] = stored
	return nil
}

func (r *InMemoryRepository) Clear(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
