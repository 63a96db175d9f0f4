package savedbuild

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/builder"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/logging"
)

// DefaultLimit is how many builds a user keeps when no limit is configured.
const DefaultLimit = 10

// Recommender produces the recommendation that gets saved.
type Recommender interface {
	Recommend(cfg builder.BuildConfig) (builder.Recommendation, error)
}

// Service manages saved builds. Saves are serialized so that ids minted from
// the clock stay unique per user.
type Service struct {
	mu          sync.Mutex
	repo        Repository
	recommender Recommender
	limit       int
	now         func() time.Time
	log         zerolog.Logger
}

func NewService(repo Repository, recommender Recommender, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{
		repo:        repo,
		recommender: recommender,
		limit:       limit,
		now:         time.Now,
		log:         logging.With("savedbuild"),
	}
}

func (s *Service) List(userID int) ([]SavedBuild, error) {
	return s.repo.List(userID)
}

// Save recommends a build for cfg and stores it as the user's newest build.
func (s *Service) Save(userID int, cfg builder.BuildConfig) (SavedBuild, error) {
	rec, err := s.recommender.Recommend(cfg)
	if err != nil {
		return SavedBuild{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.List(userID)
	if err != nil {
		return SavedBuild{}, err
	}

	now := s.now()
	id := now.UnixMilli()
	// two saves inside the same millisecond must not collide
	if len(existing) > 0 && existing[0].ID >= id {
		id = existing[0].ID + 1
	}

	b := SavedBuild{
		ID:             id,
		Config:         cfg,
		Recommendation: rec,
		SavedAt:        now.UTC().Format(time.RFC3339),
	}
	list, err := s.repo.Add(userID, b, s.limit)
	if err != nil {
		return SavedBuild{}, err
	}
	if evicted := len(existing) + 1 - len(list); evicted > 0 {
		s.log.Debug().Int("user_id", userID).Int("evicted", evicted).Msg("saved builds trimmed")
	}
	return b, nil
}

func (s *Service) Delete(userID int, id int64) error {
	return s.repo.Delete(userID, id)
}
