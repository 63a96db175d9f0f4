package builder

import (
	"fmt"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
)

// Engine turns a BuildConfig into a Recommendation over a fixed catalog.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog  *catalog.Catalog
	profiles *ProfileTable
}

func NewEngine(cat *catalog.Catalog, profiles *ProfileTable) *Engine {
	return &Engine{catalog: cat, profiles: profiles}
}

// Recommend runs the full pipeline: profile, tier, per-category selection,
// resolution adjustment, playstyle refinement and summary. It only fails on
// an invalid config or a catalog with an empty category.
func (e *Engine) Recommend(cfg BuildConfig) (Recommendation, error) {
	if err := cfg.Validate(); err != nil {
		return Recommendation{}, err
	}
	if err := e.catalog.Validate(); err != nil {
		return Recommendation{}, fmt.Errorf("catalog misconfigured: %w", err)
	}
	// normalize "4k" and friends
	cfg.Resolution, _ = catalog.ParseResolution(string(cfg.Resolution))
	cfg.Playstyle, _ = ParsePlaystyle(string(cfg.Playstyle))

	var diags []Diagnostic

	profile, known := e.profiles.Resolve(cfg.Game)
	if !known {
		diags = append(diags, Diagnostic{
			Code:    DiagUnknownGame,
			Message: fmt.Sprintf("unknown game %q, using %s profile", cfg.Game, profile.ID),
		})
	}

	tier := ClassifyTier(cfg.Budget, cfg.Playstyle)
	weights := categoryWeights(profile)

	sel := make(Selection, len(catalog.Categories))
	for _, c := range catalog.Categories {
		it, affordable := SelectItem(e.catalog.Items(c), tier, cfg.Budget, weights[c])
		if !affordable {
			diags = append(diags, Diagnostic{
				Code:     DiagNoAffordableItem,
				Category: c,
				Message:  fmt.Sprintf("no %s within %.0f%% of budget, picked %s", c, affordableShare*100, it.ID),
			})
		}
		sel[c] = it
	}

	sel = adjustForResolution(e.catalog, cfg.Resolution, sel)
	sel = refineForPlaystyle(e.catalog, profile, cfg, sel)

	rec := Recommendation{
		Items:       sel,
		TotalPrice:  totalPrice(sel),
		Performance: summarize(sel, cfg.Resolution, profile, cfg.Budget),
		GameProfile: profile,
		Tier:        tier,
	}
	if rec.Performance.BudgetUtilization > 100 {
		diags = append(diags, Diagnostic{
			Code:    DiagOverBudget,
			Message: fmt.Sprintf("selection uses %d%% of budget", rec.Performance.BudgetUtilization),
		})
	}
	rec.Diagnostics = diags
	return rec, nil
}
