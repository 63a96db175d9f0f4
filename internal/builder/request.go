package builder

import (
	"strings"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/validation"
)

// BuildRequest is the JSON body accepted wherever a build is requested.
type BuildRequest struct {
	Game       string `json:"game" validate:"required"`
	Budget     int    `json:"budget" validate:"gt=0"`
	Resolution string `json:"resolution" validate:"required"`
	Playstyle  string `json:"playstyle" validate:"required"`
}

// Config validates the request and converts it. Field errors are keyed by
// JSON name.
func (r BuildRequest) Config() (BuildConfig, map[string]string) {
	errs := validation.Struct(r)
	if errs == nil {
		errs = map[string]string{}
	}

	cfg := BuildConfig{Game: strings.TrimSpace(r.Game), Budget: r.Budget}
	if _, bad := errs["resolution"]; !bad {
		res, err := catalog.ParseResolution(r.Resolution)
		if err != nil {
			errs["resolution"] = "resolution must be one of 1080p, 1440p, 4K"
		}
		cfg.Resolution = res
	}
	if _, bad := errs["playstyle"]; !bad {
		ps, err := ParsePlaystyle(r.Playstyle)
		if err != nil {
			errs["playstyle"] = "playstyle must be one of casual, competitive, pro"
		}
		cfg.Playstyle = ps
	}
	return cfg, errs
}
