package builder

import (
	"github.com/rs/zerolog"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/logging"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/metrics"
)

// CatalogSource supplies the catalog snapshot each request runs against.
type CatalogSource interface {
	Snapshot() (*catalog.Catalog, error)
}

// StaticCatalog serves a fixed snapshot.
type StaticCatalog struct {
	Catalog *catalog.Catalog
}

func (s StaticCatalog) Snapshot() (*catalog.Catalog, error) {
	return s.Catalog, nil
}

// Slider bounds the budget the storefront lets users pick. Zero fields
// disable the corresponding check.
type Slider struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

func (s Slider) Check(budget int) error {
	if (s.Min > 0 && budget < s.Min) || (s.Max > 0 && budget > s.Max) {
		return ErrBudgetOutOfRange
	}
	if s.Step > 0 && (budget-s.Min)%s.Step != 0 {
		return ErrBudgetStep
	}
	return nil
}

type Service struct {
	source   CatalogSource
	profiles *ProfileTable
	slider   Slider
	log      zerolog.Logger
}

func NewService(source CatalogSource, profiles *ProfileTable, slider Slider) *Service {
	return &Service{
		source:   source,
		profiles: profiles,
		slider:   slider,
		log:      logging.With("builder"),
	}
}

// Recommend validates cfg against the slider and runs the engine on the
// current catalog snapshot.
func (s *Service) Recommend(cfg BuildConfig) (Recommendation, error) {
	if err := cfg.Validate(); err != nil {
		return Recommendation{}, err
	}
	if err := s.slider.Check(cfg.Budget); err != nil {
		return Recommendation{}, err
	}

	cat, err := s.source.Snapshot()
	if err != nil {
		s.log.Error().Err(err).Msg("catalog snapshot failed")
		return Recommendation{}, err
	}

	rec, err := NewEngine(cat, s.profiles).Recommend(cfg)
	if err != nil {
		s.log.Error().Err(err).Str("game", cfg.Game).Msg("recommendation failed")
		return Recommendation{}, err
	}

	metrics.RecommendationsTotal.WithLabelValues(string(rec.Tier)).Inc()
	for _, d := range rec.Diagnostics {
		metrics.RecommendationDiagnostics.WithLabelValues(string(d.Code)).Inc()
	}
	s.log.Debug().
		Str("game", cfg.Game).
		Int("budget", cfg.Budget).
		Str("tier", string(rec.Tier)).
		Int("total", rec.TotalPrice).
		Int("diagnostics", len(rec.Diagnostics)).
		Msg("recommendation generated")
	return rec, nil
}

// GameOption is one selectable game.
type GameOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Genre string `json:"genre"`
}

// Options describes the inputs the build form offers.
type Options struct {
	Games       []GameOption         `json:"games"`
	Resolutions []catalog.Resolution `json:"resolutions"`
	Playstyles  []Playstyle          `json:"playstyles"`
	Budget      Slider               `json:"budget"`
}

func (s *Service) Options() Options {
	games := make([]GameOption, 0)
	for _, p := range s.profiles.List() {
		games = append(games, GameOption{ID: p.ID, Label: p.Label, Genre: p.Genre})
	}
	return Options{
		Games:       games,
		Resolutions: catalog.Resolutions,
		Playstyles:  Playstyles,
		Budget:      s.slider,
	}
}
