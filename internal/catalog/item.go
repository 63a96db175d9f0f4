package catalog

import (
	"errors"
	"strings"
)

var (
	ErrNotFound          = errors.New("catalog item not found")
	ErrDuplicate         = errors.New("catalog item already exists")
	ErrEmptyCategory     = errors.New("catalog category has no items")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidTier       = errors.New("invalid tier")
	ErrInvalidResolution = errors.New("invalid resolution")
)

// Category is the fixed product family of an item.
type Category string

const (
	CategoryGPU      Category = "gpu"
	CategoryMonitor  Category = "monitor"
	CategoryKeyboard Category = "keyboard"
	CategoryMouse    Category = "mouse"
	CategoryHeadset  Category = "headset"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryGPU,
	CategoryMonitor,
	CategoryKeyboard,
	CategoryMouse,
	CategoryHeadset,
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// Tier is an ordinal quality label.
type Tier string

const (
	TierMid      Tier = "mid"
	TierHigh     Tier = "high"
	TierUltra    Tier = "ultra"
	TierFlagship Tier = "flagship"
)

var Tiers = []Tier{TierMid, TierHigh, TierUltra, TierFlagship}

// Ordinal returns 1 (mid) through 4 (flagship), or 0 for an unknown tier.
func (t Tier) Ordinal() int {
	switch t {
	case TierMid:
		return 1
	case TierHigh:
		return 2
	case TierUltra:
		return 3
	case TierFlagship:
		return 4
	}
	return 0
}

func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if t.Ordinal() == 0 {
		return "", ErrInvalidTier
	}
	return t, nil
}

// Resolution is a display resolution class.
type Resolution string

const (
	Resolution1080p Resolution = "1080p"
	Resolution1440p Resolution = "1440p"
	Resolution4K    Resolution = "4K"
)

var Resolutions = []Resolution{Resolution1080p, Resolution1440p, Resolution4K}

// ParseResolution accepts the canonical names case-insensitively ("4k" -> "4K").
func ParseResolution(s string) (Resolution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1080p":
		return Resolution1080p, nil
	case "1440p":
		return Resolution1440p, nil
	case "4k":
		return Resolution4K, nil
	}
	return "", ErrInvalidResolution
}

// Item is one purchasable part. Prices are whole rupees.
type Item struct {
	ID            string   `json:"id" validate:"required,max=64"`
	Title         string   `json:"title" validate:"required"`
	Brand         string   `json:"brand"`
	Image         string   `json:"image,omitempty"`
	Price         int      `json:"price" validate:"gte=0"`
	DiscountPrice int      `json:"discountPrice" validate:"gte=0,ltefield=Price"`
	Category      Category `json:"category"`
	Tier          Tier     `json:"tier"`

	// GPU only; zero means unknown.
	FPS1080 int `json:"fps1080,omitempty" validate:"gte=0"`
	FPS1440 int `json:"fps1440,omitempty" validate:"gte=0"`
	FPS4K   int `json:"fps4k,omitempty" validate:"gte=0"`

	// Monitor only; zero means unknown.
	RefreshRate int        `json:"refreshRate,omitempty" validate:"gte=0"`
	Resolution  Resolution `json:"resolution,omitempty"`
}

// Key identifies an item across categories.
func (it Item) Key() string {
	return Key(it.Category, it.ID)
}

func Key(c Category, id string) string {
	return string(c) + ":" + id
}

// ParseKey splits a "category:id" key.
func ParseKey(key string) (Category, string, error) {
	cat, id, ok := strings.Cut(key, ":")
	if !ok || id == "" {
		return "", "", ErrNotFound
	}
	c, err := ParseCategory(cat)
	if err != nil {
		return "", "", err
	}
	return c, id, nil
}
