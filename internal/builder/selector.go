package builder

import (
	"sort"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
)

const (
	// share of the total budget an item may cost and still count as affordable
	affordableShare = 0.55
	fullFitShare    = 0.35
	halfFitShare    = 0.5

	// headsets are scored below other peripherals
	headsetWeightFactor = 0.8
)

type scoredItem struct {
	item  catalog.Item
	score float64
}

// ScoreItem rates one item against the target tier and budget:
// (4 - |tier distance|) * weight + budget fit.
func ScoreItem(it catalog.Item, target catalog.Tier, budget int, weight float64) float64 {
	diff := it.Tier.Ordinal() - target.Ordinal()
	if diff < 0 {
		diff = -diff
	}
	return float64(4-diff)*weight + budgetFit(it.DiscountPrice, budget)
}

func budgetFit(price, budget int) float64 {
	switch {
	case withinShare(price, budget, fullFitShare):
		return 1
	case withinShare(price, budget, halfFitShare):
		return 0.5
	}
	return 0
}

func withinShare(price, budget int, share float64) bool {
	return float64(price) <= share*float64(budget)
}

// SelectItem picks the highest-scored affordable item. When nothing is
// affordable it returns the lowest-scored item and false. Ties keep catalog
// order. items must not be empty.
func SelectItem(items []catalog.Item, target catalog.Tier, budget int, weight float64) (catalog.Item, bool) {
	scored := make([]scoredItem, 0, len(items))
	for _, it := range items {
		scored = append(scored, scoredItem{item: it, score: ScoreItem(it, target, budget, weight)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	for _, s := range scored {
		if withinShare(s.item.DiscountPrice, budget, affordableShare) {
			return s.item, true
		}
	}
	if len(scored) == 0 {
		return catalog.Item{}, false
	}
	return scored[len(scored)-1].item, false
}

// categoryWeights derives per-category weights from a profile.
func categoryWeights(p GameProfile) map[catalog.Category]float64 {
	return map[catalog.Category]float64{
		catalog.CategoryGPU:      p.GPUWeight,
		catalog.CategoryMonitor:  p.MonitorWeight,
		catalog.CategoryKeyboard: p.PeripheralWeight,
		catalog.CategoryMouse:    p.PeripheralWeight,
		catalog.CategoryHeadset:  p.PeripheralWeight * headsetWeightFactor,
	}
}
