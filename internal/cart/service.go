package cart

import (
	"sync"
	"time"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/builder"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
)

// ItemLookup resolves catalog items being added to a cart.
type ItemLookup interface {
	Get(cat catalog.Category, id string) (catalog.Item, error)
}

// Recommender turns a build config into items for AddBuild.
type Recommender interface {
	Recommend(cfg builder.BuildConfig) (builder.Recommendation, error)
}

// Service orchestrates cart operations. Mutations are serialized so that
// concurrent adds for the same user do not lose updates.
type Service struct {
	mu          sync.Mutex
	repo        Repository
	items       ItemLookup
	recommender Recommender
	now         func() time.Time
}

func NewService(repo Repository, items ItemLookup, recommender Recommender) *Service {
	return &Service{repo: repo, items: items, recommender: recommender, now: time.Now}
}

func (s *Service) Get(userID int) (Cart, error) {
	if userID <= 0 {
		return Cart{}, ErrInvalidUser
	}
	lines, err := s.repo.GetLines(userID)
	if err != nil {
		return Cart{}, err
	}
	return newCart(lines), nil
}

// Add changes the quantity of one item by qty. Negative values decrement
// and a line that drops to zero or below is removed. Zero is a no-op.
func (s *Service) Add(userID int, cat catalog.Category, id string, qty int) (Cart, error) {
	if userID <= 0 {
		return Cart{}, ErrInvalidUser
	}
	if qty == 0 {
		return s.Get(userID)
	}

	var item catalog.Item
	if qty > 0 {
		it, err := s.items.Get(cat, id)
		if err != nil {
			return Cart{}, err
		}
		item = it
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.repo.GetLines(userID)
	if err != nil {
		return Cart{}, err
	}
	key := catalog.Key(cat, id)
	if qty > 0 {
		lines = mergeLine(lines, item, qty)
	} else {
		lines = decrementLine(lines, key, -qty)
	}
	return s.save(userID, lines)
}

// AddItems adds one of each referenced item. Nothing is added unless every
// reference resolves.
func (s *Service) AddItems(userID int, refs []ItemRef) (Cart, error) {
	if userID <= 0 {
		return Cart{}, ErrInvalidUser
	}
	items := make([]catalog.Item, 0, len(refs))
	for _, ref := range refs {
		it, err := s.items.Get(ref.Category, ref.ID)
		if err != nil {
			return Cart{}, err
		}
		items = append(items, it)
	}
	return s.addAll(userID, items)
}

// AddBuild recommends a build for cfg and adds each of its items once.
func (s *Service) AddBuild(userID int, cfg builder.BuildConfig) (Cart, builder.Recommendation, error) {
	if userID <= 0 {
		return Cart{}, builder.Recommendation{}, ErrInvalidUser
	}
	rec, err := s.recommender.Recommend(cfg)
	if err != nil {
		return Cart{}, builder.Recommendation{}, err
	}
	c, err := s.addAll(userID, rec.OrderedItems())
	return c, rec, err
}

func (s *Service) Clear(userID int) error {
	if userID <= 0 {
		return ErrInvalidUser
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Clear(userID)
}

// Checkout hands the current cart to place and clears it once place
// succeeds. An empty cart returns ErrEmptyCart without calling place.
func (s *Service) Checkout(userID int, place func(Cart) error) error {
	if userID <= 0 {
		return ErrInvalidUser
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.repo.GetLines(userID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return ErrEmptyCart
	}
	if err := place(newCart(lines)); err != nil {
		return err
	}
	return s.repo.Clear(userID)
}

func (s *Service) addAll(userID int, items []catalog.Item) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.repo.GetLines(userID)
	if err != nil {
		return Cart{}, err
	}
	for _, it := range items {
		lines = mergeLine(lines, it, 1)
	}
	return s.save(userID, lines)
}

func (s *Service) save(userID int, lines []Line) (Cart, error) {
	if err := s.repo.SaveLines(userID, lines, s.now().UTC().Format(time.RFC3339)); err != nil {
		return Cart{}, err
	}
	return newCart(lines), nil
}

// mergeLine bumps an existing line, refreshing its details, or appends a
// new one.
func mergeLine(lines []Line, it catalog.Item, qty int) []Line {
	for i, l := range lines {
		if l.key() == it.Key() {
			updated := lineFromItem(it, l.Quantity+qty)
			lines[i] = updated
			return lines
		}
	}
	return append(lines, lineFromItem(it, qty))
}

func decrementLine(lines []Line, key string, by int) []Line {
	for i, l := range lines {
		if l.key() != key {
			continue
		}
		l.Quantity -= by
		if l.Quantity <= 0 {
			return append(lines[:i], lines[i+1:]...)
		}
		lines[i] = l
		return lines
	}
	return lines
}
