package savedbuild

import "github.com/MananRadadiya/Gaming-Store-sub001/internal/builder"

// SavedBuild is a recommendation a user chose to keep. ID is the save time
// in unix milliseconds, unique per user.
type SavedBuild struct {
	ID             int64                  `json:"id"`
	Config         builder.BuildConfig    `json:"config"`
	Recommendation builder.Recommendation `json:"recommendation"`
	SavedAt        string                 `json:"savedAt"`
}
