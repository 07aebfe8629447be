package mdcfg

import "strings"

// Nested expands dotted keys into nested maps:
//
//	{"a.b": 1, "a.c": 2, "d": 4} -> {"a": {"b": 1, "c": 2}, "d": 4}
//
// When a key is both a leaf and a section (e.g. "a" and "a.b"), whichever
// entry comes later in the Mapping replaces the other.
func (m *Mapping) Nested() map[string]any {
	result := map[string]any{}
	for _, e := range m.Entries() {
		setNested(result, strings.Split(e.Key, "."), e.Value.Any())
	}
	return result
}

// setNested stores v at the end of keys, creating maps on the way down.
func setNested(dst map[string]any, keys []string, v any) {
	for _, k := range keys[:len(keys)-1] {
		child, ok := dst[k].(map[string]any)
		if !ok {
			child = map[string]any{}
			dst[k] = child
		}
		dst = child
	}
	dst[keys[len(keys)-1]] = v
}
