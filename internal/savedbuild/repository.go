package savedbuild

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("saved build not found")

// Repository stores saved builds per user, newest first.
type Repository interface {
	List(userID int) ([]SavedBuild, error)
	// Add stores b and evicts the oldest builds beyond limit. It returns
	// the user's builds after the insert.
	Add(userID int, b SavedBuild, limit int) ([]SavedBuild, error)
	Delete(userID int, id int64) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	builds map[int][]SavedBuild
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{builds: make(map[int][]SavedBuild)}
}

func (r *InMemoryRepository) List(userID int) ([]SavedBuild, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]SavedBuild, len(r.builds[userID]))
	copy(out, r.builds[userID])
	return out, nil
}

func (r *InMemoryRepository) Add(userID int, b SavedBuild, limit int) ([]SavedBuild, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := append([]SavedBuild{b}, r.builds[userID]...)
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	r.builds[userID] = list

	out := make([]SavedBuild, len(list))
	copy(out, list)
	return out, nil
}

func (r *InMemoryRepository) Delete(userID int, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.builds[userID]
	for i, b := range list {
		if b.ID == id {
			r.builds[userID] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
