package catalog

import (
	"sheetlens/domain/core"
	"sheetlens/domain/profile"
)

// Entry is the catalog record for an ingested dataset: metadata and column
// profiles, but not the rows themselves. Rows are re-decoded from FilePath
// when they are not already cached in memory.
type Entry struct {
	ID               core.DatasetID          `json:"id"`
	DisplayName      string                  `json:"display_name"`
	OriginalFilename string                  `json:"original_filename"`
	FilePath         string                  `json:"file_path,omitempty"`
	RecordCount      int                     `json:"record_count"`
	FieldCount       int                     `json:"field_count"`
	MissingRate      float64                 `json:"missing_rate"`
	Profiles         []profile.ColumnProfile `json:"profiles"`
	CreatedAt        core.Timestamp          `json:"created_at"`
}

// OverallMissingRate computes the dataset-wide missing rate from the column
// profiles (mean of per-column rates; 0 for a dataset with no columns).
func OverallMissingRate(profiles []profile.ColumnProfile) float64 {
	if len(profiles) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range profiles {
		total += p.MissingRate
	}
	return total / float64(len(profiles))
}

// ProfileFor returns the profile of a named column, if the entry has one
func (e *Entry) ProfileFor(column string) (profile.ColumnProfile, bool) {
	for _, p := range e.Profiles {
		if p.Name == column {
			return p, true
		}
	}
	return profile.ColumnProfile{}, false
}
