package modex

import "context"

// ModuleRecord is the unit of extraction: one documented product feature and
// its finer-grained capabilities.
type ModuleRecord struct {
	// Module is the feature name. Required and non-empty after synthesis.
	Module string `json:"module"`

	// Description is prose describing the feature. The synthesis pass may
	// merge descriptions from duplicate raw records.
	Description string `json:"description"`

	// Submodules carries open-ended nested detail produced by the model.
	// Values follow encoding/json's generic mapping (string, float64, bool,
	// nil, []any, map[string]any) so arbitrary nesting survives round trips.
	Submodules map[string]any `json:"submodules"`
}

// Validate returns an error if the record contains invalid fields.
// Only synthesized records are validated; raw Pass-1 records are tolerated
// as-is.
func (m *ModuleRecord) Validate() error {
	if m.Module == "" {
		return Errorf(EINVALID, "module name required")
	}
	return nil
}

// Extractor converts consolidated documentation text into a catalogue of
// module records.
type Extractor interface {
	// Extract runs the extraction pipeline over the consolidated text and
	// returns the final module list. Blank input returns an empty list
	// without any model calls. Extract degrades to partial or empty results
	// on model failures rather than returning an error.
	Extract(ctx context.Context, consolidatedText string) ([]ModuleRecord, error)
}
