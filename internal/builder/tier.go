package builder

import "github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"

// ClassifyTier maps budget and playstyle to the target quality tier.
// First matching band wins.
func ClassifyTier(budget int, playstyle Playstyle) catalog.Tier {
	boost := playstyle.Boost()
	switch {
	case budget < 60000:
		return catalog.TierMid
	case budget < 100000:
		if boost >= 1 {
			return catalog.TierHigh
		}
		return catalog.TierMid
	case budget < 150000:
		if boost >= 0.5 {
			return catalog.TierUltra
		}
		return catalog.TierHigh
	case budget < 200000:
		if boost >= 1 {
			return catalog.TierFlagship
		}
		return catalog.TierUltra
	default:
		return catalog.TierFlagship
	}
}
