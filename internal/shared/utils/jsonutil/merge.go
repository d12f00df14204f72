// Package jsonutil provides helpers for the JSON blob columns carried by
// sites, pages and sections.
package jsonutil

// MergeShallow overlays the keys of patch onto base and returns the result.
// Top-level keys in patch overwrite base; nested values are not merged.
// A nil patch returns base unchanged; a nil base starts from empty.
func MergeShallow(base, patch map[string]interface{}) map[string]interface{} {
	if patch == nil {
		return base
	}
	merged := make(map[string]interface{}, len(base)+len(patch))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy of blob. Nil stays nil.
func Clone(blob map[string]interface{}) map[string]interface{} {
	if blob == nil {
		return nil
	}
	cloned := make(map[string]interface{}, len(blob))
	for k, v := range blob {
		cloned[k] = v
	}
	return cloned
}
