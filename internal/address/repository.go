package address

import (
	"errors"
	"sync"
)

var (
	ErrNotFound    = errors.New("address not found")
	ErrInvalidUser = errors.New("invalid user")
)

type Repository interface {
	List(userID int) ([]Address, error)
	Get(userID, addressID int) (Address, error)
	Add(userID int, f Fields, at string) (Address, error)
	Update(userID, addressID int, f Fields, at string) (Address, error)
	Delete(userID, addressID int) error
}

// InMemoryRepository keeps addresses per user. IDs are unique across users.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int
	data   map[int][]Address
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, data: make(map[int][]Address)}
}

func (r *InMemoryRepository) List(userID int) ([]Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Address, len(r.data[userID]))
	copy(out, r.data[userID])
	return out, nil
}

func (r *InMemoryRepository) Get(userID, addressID int) (Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.data[userID] {
		if a.AddressID == addressID {
			return a, nil
		}
	}
	return Address{}, ErrNotFound
}

func (r *InMemoryRepository) Add(userID int, f Fields, at string) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := Address{
		AddressID:   r.nextID,
		UserID:      userID,
		AddressName: f.AddressName,
		AddressDesc: f.AddressDesc,
		Phone:       f.Phone,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
	r.nextID++
	r.data[userID] = append(r.data[userID], a)
	return a, nil
}

func (r *InMemoryRepository) Update(userID, addressID int, f Fields, at string) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.data[userID] {
		if a.AddressID == addressID {
			a.AddressName = f.AddressName
			a.AddressDesc = f.AddressDesc
			a.Phone = f.Phone
			a.UpdatedAt = at
			r.data[userID][i] = a
			return a, nil
		}
	}
	return Address{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(userID, addressID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	addrs := r.data[userID]
	for i, a := range addrs {
		if a.AddressID == addressID {
			r.data[userID] = append(addrs[:i:i], addrs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
