package mdcfg

import "strings"

// buildMapping turns flattened Paths into a Mapping. Paths whose last line
// has no "key: value" assignment are section headers and are skipped.
func buildMapping(paths []Path) *Mapping {
	m := NewMapping()
	for _, p := range paths {
		lastKey, raw, ok := splitAssignment(p.Last())
		if !ok {
			continue
		}
		m.Set(flatKey(p[:len(p)-1], lastKey), coerce(raw))
	}
	return m
}

// flatKey joins the ancestor lines and lastKey with dots, dropping the
// trailing ":" section marker from each part.
func flatKey(ancestors []string, lastKey string) string {
	parts := make([]string, 0, len(ancestors)+1)
	for _, a := range ancestors {
		parts = append(parts, strings.TrimSuffix(a, ":"))
	}
	parts = append(parts, strings.TrimSpace(strings.TrimSuffix(lastKey, ":")))
	return strings.Join(parts, ".")
}
