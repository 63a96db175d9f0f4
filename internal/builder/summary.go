package builder

import (
	"math"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
)

// fallbacks when an item lacks the relevant performance field
const (
	defaultFPS4K       = 60
	defaultFPS1440     = 100
	defaultFPS1080     = 144
	defaultRefreshRate = 144

	competitiveRefreshRate = 144
)

func totalPrice(sel Selection) int {
	total := 0
	for _, it := range sel {
		total += it.DiscountPrice
	}
	return total
}

func summarize(sel Selection, res catalog.Resolution, profile GameProfile, budget int) Performance {
	gpu := sel[catalog.CategoryGPU]

	var fps int
	switch res {
	case catalog.Resolution4K:
		fps = orDefault(gpu.FPS4K, defaultFPS4K)
	case catalog.Resolution1440p:
		fps = orDefault(gpu.FPS1440, defaultFPS1440)
	default:
		fps = orDefault(gpu.FPS1080, defaultFPS1080)
	}

	refresh := orDefault(sel[catalog.CategoryMonitor].RefreshRate, defaultRefreshRate)

	return Performance{
		EstimatedFPS:      fps,
		RefreshRate:       refresh,
		CompetitiveReady:  profile.PreferHighRefresh && refresh >= competitiveRefreshRate,
		RayTracingCapable: gpu.Tier.Ordinal() >= catalog.TierUltra.Ordinal(),
		BudgetUtilization: utilization(totalPrice(sel), budget),
	}
}

// utilization is total/budget as a rounded percentage; unbounded above 100.
func utilization(total, budget int) int {
	return int(math.Round(float64(total) / float64(budget) * 100))
}

func orDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
