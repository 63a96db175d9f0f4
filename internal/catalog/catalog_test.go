package catalog

import (
	"errors"
	"testing"
)

func TestDefaultItems_Invariants(t *testing.T) {
	items := DefaultItems()
	if len(items) != 30 {
		t.Fatalf("expected 30 seed items, got %d", len(items))
	}

	seen := map[string]bool{}
	for _, it := range items {
		if seen[it.Key()] {
			t.Fatalf("duplicate key %s", it.Key())
		}
		seen[it.Key()] = true
		if it.DiscountPrice > it.Price {
			t.Fatalf("%s: discount %d above price %d", it.Key(), it.DiscountPrice, it.Price)
		}
		if it.Tier.Ordinal() == 0 {
			t.Fatalf("%s: unknown tier %q", it.Key(), it.Tier)
		}
		if it.Category == CategoryMonitor && (it.RefreshRate == 0 || it.Resolution == "") {
			t.Fatalf("%s: monitor missing refresh rate or resolution", it.Key())
		}
		if it.Category == CategoryGPU && (it.FPS1080 == 0 || it.FPS1440 == 0 || it.FPS4K == 0) {
			t.Fatalf("%s: gpu missing fps estimates", it.Key())
		}
	}

	if err := New(items).Validate(); err != nil {
		t.Fatalf("default catalog should validate: %v", err)
	}
}

func TestCatalog_PreservesOrderAndCopies(t *testing.T) {
	c := New([]Item{
		{ID: "b", Category: CategoryMouse, Tier: TierMid},
		{ID: "x", Category: CategoryGPU, Tier: TierHigh},
		{ID: "a", Category: CategoryMouse, Tier: TierHigh},
		{ID: "junk", Category: "toaster"},
	})

	mice := c.Items(CategoryMouse)
	if len(mice) != 2 || mice[0].ID != "b" || mice[1].ID != "a" {
		t.Fatalf("unexpected mouse order %+v", mice)
	}
	mice[0].ID = "mutated"
	if c.Items(CategoryMouse)[0].ID != "b" {
		t.Fatalf("Items must return a copy")
	}

	all := c.All()
	if len(all) != 3 || all[0].ID != "x" {
		t.Fatalf("All should list gpu first and drop unknown categories, got %+v", all)
	}

	if _, ok := c.Find(CategoryMouse, "a"); !ok {
		t.Fatalf("expected to find mouse a")
	}
	if _, ok := c.Find(CategoryGPU, "a"); ok {
		t.Fatalf("ids are scoped to their category")
	}
}

func TestCatalog_ValidateEmptyCategory(t *testing.T) {
	items := DefaultItems()
	filtered := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Category != CategoryHeadset {
			filtered = append(filtered, it)
		}
	}
	err := New(filtered).Validate()
	if !errors.Is(err, ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
}

func TestParseHelpers(t *testing.T) {
	if r, err := ParseResolution("4k"); err != nil || r != Resolution4K {
		t.Fatalf("expected 4K, got %q %v", r, err)
	}
	if _, err := ParseResolution("8K"); !errors.Is(err, ErrInvalidResolution) {
		t.Fatalf("expected ErrInvalidResolution, got %v", err)
	}
	if tier, err := ParseTier("Flagship"); err != nil || tier.Ordinal() != 4 {
		t.Fatalf("expected flagship, got %q %v", tier, err)
	}
	cat, id, err := ParseKey("gpu:gpu-rtx4090")
	if err != nil || cat != CategoryGPU || id != "gpu-rtx4090" {
		t.Fatalf("unexpected key parse %q %q %v", cat, id, err)
	}
	if _, _, err := ParseKey("gpu"); err == nil {
		t.Fatalf("expected error for key without id")
	}
}

func TestInMemoryGetMany_KeyOrderSkipsMissing(t *testing.T) {
	repo := NewInMemoryRepository(DefaultItems())

	items, err := repo.GetMany([]string{"headset:hs-nova-pro", "gpu:missing", "gpu:gpu-rtx4060"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "hs-nova-pro" || items[1].ID != "gpu-rtx4060" {
		t.Fatalf("unexpected order: %s, %s", items[0].ID, items[1].ID)
	}
}
