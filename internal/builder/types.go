package builder

import (
	"errors"
	"strings"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
)

var (
	ErrInvalidBudget     = errors.New("budget must be a positive amount")
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrInvalidPlaystyle  = errors.New("invalid playstyle")
	ErrBudgetOutOfRange  = errors.New("budget outside the allowed range")
	ErrBudgetStep        = errors.New("budget is not a multiple of the slider step")
)

// Playstyle describes how seriously the build will be played.
type Playstyle string

const (
	PlaystyleCasual      Playstyle = "casual"
	PlaystyleCompetitive Playstyle = "competitive"
	PlaystylePro         Playstyle = "pro"
)

var Playstyles = []Playstyle{PlaystyleCasual, PlaystyleCompetitive, PlaystylePro}

func ParsePlaystyle(s string) (Playstyle, error) {
	p := Playstyle(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Playstyles {
		if p == known {
			return p, nil
		}
	}
	return "", ErrInvalidPlaystyle
}

// Boost is the playstyle's weight in tier classification.
func (p Playstyle) Boost() float64 {
	switch p {
	case PlaystylePro:
		return 1
	case PlaystyleCompetitive:
		return 0.5
	}
	return 0
}

// BuildConfig is one recommendation request.
type BuildConfig struct {
	Game       string             `json:"game"`
	Budget     int                `json:"budget"`
	Resolution catalog.Resolution `json:"resolution"`
	Playstyle  Playstyle          `json:"playstyle"`
}

// Validate rejects non-positive budgets and out-of-set enums. Unknown games
// are not an error; they resolve to the default profile.
func (c BuildConfig) Validate() error {
	if c.Budget <= 0 {
		return ErrInvalidBudget
	}
	if _, err := catalog.ParseResolution(string(c.Resolution)); err != nil {
		return ErrInvalidResolution
	}
	if _, err := ParsePlaystyle(string(c.Playstyle)); err != nil {
		return ErrInvalidPlaystyle
	}
	return nil
}

// Selection maps each category to its chosen item.
type Selection map[catalog.Category]catalog.Item

// Performance is derived from a final selection.
type Performance struct {
	EstimatedFPS      int  `json:"estimatedFps"`
	RefreshRate       int  `json:"refreshRate"`
	CompetitiveReady  bool `json:"competitiveReady"`
	RayTracingCapable bool `json:"rayTracingCapable"`
	BudgetUtilization int  `json:"budgetUtilization"`
}

// DiagnosticCode names a non-fatal substitution made while building.
type DiagnosticCode string

const (
	DiagUnknownGame      DiagnosticCode = "unknown_game"
	DiagNoAffordableItem DiagnosticCode = "no_affordable_item"
	DiagOverBudget       DiagnosticCode = "over_budget"
)

type Diagnostic struct {
	Code     DiagnosticCode   `json:"code"`
	Category catalog.Category `json:"category,omitempty"`
	Message  string           `json:"message"`
}

// Recommendation is the immutable result of one engine run.
type Recommendation struct {
	Items       Selection    `json:"items"`
	TotalPrice  int          `json:"totalPrice"`
	Performance Performance  `json:"performance"`
	GameProfile GameProfile  `json:"gameProfile"`
	Tier        catalog.Tier `json:"tier"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// OrderedItems returns the selected items in category display order.
func (r Recommendation) OrderedItems() []catalog.Item {
	out := make([]catalog.Item, 0, len(r.Items))
	for _, cat := range catalog.Categories {
		if it, ok := r.Items[cat]; ok {
			out = append(out, it)
		}
	}
	return out
}
