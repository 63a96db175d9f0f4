package builder

import "github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"

// share of the budget a refresh-rate upgrade may cost
const highRefreshShare = 0.30

// adjustForResolution biases GPU and monitor picks toward the requested
// resolution. 1440p passes through unchanged.
func adjustForResolution(cat *catalog.Catalog, res catalog.Resolution, sel Selection) Selection {
	switch res {
	case catalog.Resolution4K:
		current := sel[catalog.CategoryGPU].Tier.Ordinal()
		if gpu, ok := firstMatch(cat.Items(catalog.CategoryGPU), func(it catalog.Item) bool {
			return it.Tier.Ordinal() > current
		}); ok {
			sel[catalog.CategoryGPU] = gpu
		}
		if mon, ok := firstMatch(cat.Items(catalog.CategoryMonitor), func(it catalog.Item) bool {
			return it.Resolution == catalog.Resolution4K
		}); ok {
			sel[catalog.CategoryMonitor] = mon
		}
	case catalog.Resolution1080p:
		if mon, ok := highestRefresh(cat.Items(catalog.CategoryMonitor), func(it catalog.Item) bool {
			return it.Resolution == catalog.Resolution1080p
		}); ok {
			sel[catalog.CategoryMonitor] = mon
		}
	}
	return sel
}

// refineForPlaystyle applies the high-refresh and low-latency overrides.
// The two branches are gated independently. When the resolution step pinned
// the monitor (4K, 1080p), a refresh upgrade must keep that resolution.
func refineForPlaystyle(cat *catalog.Catalog, profile GameProfile, cfg BuildConfig, sel Selection) Selection {
	if profile.PreferHighRefresh && cfg.Playstyle != PlaystyleCasual {
		// 1080p already holds the highest-refresh 1080p panel, so pinning
		// makes this upgrade a no-op there.
		pinned := cfg.Resolution != catalog.Resolution1440p &&
			sel[catalog.CategoryMonitor].Resolution == cfg.Resolution
		if mon, ok := highestRefresh(cat.Items(catalog.CategoryMonitor), func(it catalog.Item) bool {
			if pinned && it.Resolution != cfg.Resolution {
				return false
			}
			return withinShare(it.DiscountPrice, cfg.Budget, highRefreshShare)
		}); ok && mon.RefreshRate > sel[catalog.CategoryMonitor].RefreshRate {
			sel[catalog.CategoryMonitor] = mon
		}
	}

	if profile.PreferLowLatency && cfg.Playstyle == PlaystylePro {
		for _, c := range []catalog.Category{catalog.CategoryMouse, catalog.CategoryKeyboard} {
			if it, ok := firstMatch(cat.Items(c), isTopTier); ok {
				sel[c] = it
			}
		}
	}
	return sel
}

func isTopTier(it catalog.Item) bool {
	return it.Tier == catalog.TierUltra || it.Tier == catalog.TierFlagship
}

func firstMatch(items []catalog.Item, pred func(catalog.Item) bool) (catalog.Item, bool) {
	for _, it := range items {
		if pred(it) {
			return it, true
		}
	}
	return catalog.Item{}, false
}

// highestRefresh returns the matching item with the highest refresh rate;
// the earliest one wins ties.
func highestRefresh(items []catalog.Item, pred func(catalog.Item) bool) (catalog.Item, bool) {
	var (
		best  catalog.Item
		found bool
	)
	for _, it := range items {
		if !pred(it) {
			continue
		}
		if !found || it.RefreshRate > best.RefreshRate {
			best = it
			found = true
		}
	}
	return best, found
}
