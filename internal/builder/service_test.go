package builder

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/metrics"
)

var storeSlider = Slider{Min: 30000, Max: 300000, Step: 5000}

type failingSource struct{ err error }

func (f failingSource) Snapshot() (*catalog.Catalog, error) { return nil, f.err }

func newTestService() *Service {
	return NewService(StaticCatalog{Catalog: catalog.New(catalog.DefaultItems())}, DefaultProfiles(), storeSlider)
}

func TestSlider_Check(t *testing.T) {
	assert.NoError(t, storeSlider.Check(30000))
	assert.NoError(t, storeSlider.Check(85000))
	assert.NoError(t, storeSlider.Check(300000))
	assert.ErrorIs(t, storeSlider.Check(25000), ErrBudgetOutOfRange)
	assert.ErrorIs(t, storeSlider.Check(305000), ErrBudgetOutOfRange)
	assert.ErrorIs(t, storeSlider.Check(31000), ErrBudgetStep)

	assert.NoError(t, Slider{}.Check(1), "zero slider disables checks")
}

func TestService_Recommend(t *testing.T) {
	s := newTestService()
	before := testutil.ToFloat64(metrics.RecommendationsTotal.WithLabelValues(string(catalog.TierMid)))

	rec, err := s.Recommend(BuildConfig{Game: "valorant", Budget: 80000, Resolution: catalog.Resolution1080p, Playstyle: PlaystyleCompetitive})
	require.NoError(t, err)
	assert.Equal(t, catalog.TierMid, rec.Tier)

	after := testutil.ToFloat64(metrics.RecommendationsTotal.WithLabelValues(string(catalog.TierMid)))
	assert.Equal(t, before+1, after)
}

func TestService_Recommend_SliderRejects(t *testing.T) {
	s := newTestService()

	_, err := s.Recommend(BuildConfig{Game: "valorant", Budget: 12345, Resolution: catalog.Resolution1080p, Playstyle: PlaystyleCasual})
	assert.ErrorIs(t, err, ErrBudgetOutOfRange)

	_, err = s.Recommend(BuildConfig{Game: "valorant", Budget: 82500, Resolution: catalog.Resolution1080p, Playstyle: PlaystyleCasual})
	assert.ErrorIs(t, err, ErrBudgetStep)

	_, err = s.Recommend(BuildConfig{Game: "valorant", Budget: -1, Resolution: catalog.Resolution1080p, Playstyle: PlaystyleCasual})
	assert.ErrorIs(t, err, ErrInvalidBudget)
}

func TestService_Recommend_SnapshotError(t *testing.T) {
	boom := errors.New("db down")
	s := NewService(failingSource{err: boom}, DefaultProfiles(), storeSlider)

	_, err := s.Recommend(BuildConfig{Game: "valorant", Budget: 80000, Resolution: catalog.Resolution1080p, Playstyle: PlaystyleCasual})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 500, ErrorStatus(err))
}

func TestService_Options(t *testing.T) {
	opts := newTestService().Options()

	require.Len(t, opts.Games, 10)
	assert.Equal(t, "valorant", opts.Games[0].ID)
	assert.Equal(t, catalog.Resolutions, opts.Resolutions)
	assert.Equal(t, Playstyles, opts.Playstyles)
	assert.Equal(t, storeSlider, opts.Budget)
}

func TestProfileTable_Resolve(t *testing.T) {
	table := DefaultProfiles()

	p, ok := table.Resolve("elden-ring")
	assert.True(t, ok)
	assert.Equal(t, "Elden Ring", p.Label)

	p, ok = table.Resolve("")
	assert.False(t, ok)
	assert.Equal(t, DefaultGameID, p.ID)

	custom := NewProfileTable([]GameProfile{{ID: "x"}, {ID: "x", Label: "dup"}, {ID: "y"}}, "missing")
	require.Len(t, custom.List(), 2)
	p, _ = custom.Resolve("zzz")
	assert.Equal(t, "x", p.ID)
	assert.Empty(t, p.Label)
}
