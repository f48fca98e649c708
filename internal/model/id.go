package model

import "strings"

// CanonicalID reduces a record id to its canonical comparable form.
// SurrealDB record ids arrive either as the full "table:key" form or as the
// bare key depending on which layer produced them; comparisons must not fail
// on that difference.
func CanonicalID(id string) string {
	id = strings.TrimSpace(id)
	if i := strings.LastIndex(id, ":"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// SameID reports whether two ids identify the same record, comparing on
// canonical form.
func SameID(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return CanonicalID(a) == CanonicalID(b)
}

// ContainsID reports whether ids contains id, comparing on canonical form.
func ContainsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if SameID(candidate, id) {
			return true
		}
	}
	return false
}

// DedupIDs returns ids with canonical-form duplicates removed, preserving
// first-seen order.
func DedupIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		key := CanonicalID(id)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, id)
	}
	return out
}
