package mdcfg

// Merge overlays b on a and returns a new Mapping. Keys keep the position
// they first had in a, then in b; values from b win.
func Merge(a, b *Mapping) *Mapping {
	result := NewMapping()

	for _, e := range a.Entries() {
		result.Set(e.Key, e.Value)
	}

	for _, e := range b.Entries() {
		result.Set(e.Key, e.Value)
	}

	return result
}
