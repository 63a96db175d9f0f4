package order

import "sync"

// Repository defines persistence operations for orders.
type Repository interface {
	Create(userID int, ord Order) (Order, error)
	// ListByUser returns the user's orders, newest first.
	ListByUser(userID int) ([]Order, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	orders map[int][]Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, orders: make(map[int][]Order)}
}

func (r *InMemoryRepository) Create(userID int, ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ord.OrderID = r.nextID
	r.nextID++
	r.orders[userID] = append(r.orders[userID], ord)
	return ord, nil
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.orders[userID]
	out := make([]Order, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	return out, nil
}
