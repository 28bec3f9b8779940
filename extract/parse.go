package extract

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/pulseai/modex"
)

// ParseModules normalizes a raw model response into module records.
// Generation is not schema-guaranteed even with a structured-output
// constraint, so several shapes are tolerated, in order:
//
//  1. empty input returns no records;
//  2. text that fails to decode as JSON is logged and dropped;
//  3. a JSON list is returned element by element;
//  4. a JSON object wrapping a list returns the first list value
//     (object keys scanned in sorted order for determinism);
//  5. a JSON object that itself looks like a single module is wrapped in a
//     one-element list, with a warning;
//  6. anything else is logged and dropped.
//
// ParseModules never fails: malformed input degrades to an empty result.
func ParseModules(logger *slog.Logger, raw string) []modex.ModuleRecord {
	if raw == "" {
		return nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		logger.Error("failed to decode model response as JSON",
			"err", err,
			"response", truncateForLog(raw),
		)
		return nil
	}

	switch v := decoded.(type) {
	case []any:
		return toRecords(logger, v)

	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if list, ok := v[k].([]any); ok {
				return toRecords(logger, list)
			}
		}

		if looksLikeModule(v) {
			logger.Warn("model returned a single module object, wrapping it in a list")
			return toRecords(logger, []any{v})
		}
	}

	logger.Warn("could not parse a module list from model response",
		"response", truncateForLog(raw),
	)
	return nil
}

// toRecords converts decoded JSON list elements into module records.
// Elements that are not module-shaped objects are skipped with a warning.
func toRecords(logger *slog.Logger, list []any) []modex.ModuleRecord {
	records := make([]modex.ModuleRecord, 0, len(list))
	for _, elem := range list {
		obj, ok := elem.(map[string]any)
		if !ok {
			logger.Warn("skipping non-object element in module list")
			continue
		}

		// Round-trip through encoding/json so key spellings the model
		// chooses (Module, Description, Submodules in any case) land on
		// the right fields.
		buf, err := json.Marshal(obj)
		if err != nil {
			logger.Warn("skipping unmarshalable element in module list", "err", err)
			continue
		}
		var rec modex.ModuleRecord
		if err := json.Unmarshal(buf, &rec); err != nil {
			logger.Warn("skipping malformed element in module list", "err", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

// looksLikeModule reports whether a decoded object carries a module key and
// a description-equivalent key, matching case-insensitively.
func looksLikeModule(obj map[string]any) bool {
	var hasModule, hasDescription bool
	for k := range obj {
		switch strings.ToLower(k) {
		case "module":
			hasModule = true
		case "description":
			hasDescription = true
		}
	}
	return hasModule && hasDescription
}

// maxLoggedResponse bounds how much of a bad response lands in the log.
const maxLoggedResponse = 500

func truncateForLog(s string) string {
	if len(s) <= maxLoggedResponse {
		return s
	}
	return s[:maxLoggedResponse] + "..."
}
