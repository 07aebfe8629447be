package mdcfg

// LookupKind tells which field of a Lookup carries the result.
type LookupKind int

const (
	// LookupMissing means neither an exact key nor any key below it exists.
	LookupMissing LookupKind = iota
	// LookupValue means the key matched exactly; Value is set.
	LookupValue
	// LookupSection means keys exist below the requested one; Section is set.
	LookupSection
	// LookupDefault means nothing matched and Value holds the caller's default.
	LookupDefault
)

// Lookup is the result of resolving a dotted key against a Config.
type Lookup struct {
	Kind    LookupKind
	Value   Value
	Section *Mapping
}

// Found reports whether the key resolved to a value or a section.
func (l Lookup) Found() bool {
	return l.Kind == LookupValue || l.Kind == LookupSection
}

// Any returns the scalar, the section as a map, or nil when missing.
func (l Lookup) Any() any {
	switch l.Kind {
	case LookupValue, LookupDefault:
		return l.Value.Any()
	case LookupSection:
		return l.Section.Map()
	default:
		return nil
	}
}

// Lookup resolves key in two steps: an exact entry first, then every entry
// under "key." with that prefix removed. An empty key selects the whole
// Mapping, even when it has no entries.
func (c *Config) Lookup(key string) Lookup {
	if key == "" {
		return Lookup{Kind: LookupSection, Section: c.mapping.clone()}
	}
	if v, ok := c.mapping.Get(key); ok {
		return Lookup{Kind: LookupValue, Value: v}
	}
	section := c.mapping.Section(key)
	if section.Len() == 0 {
		return Lookup{Kind: LookupMissing}
	}
	return Lookup{Kind: LookupSection, Section: section}
}

// Get is Lookup with a fallback: when a non-empty key matches nothing, the
// result has kind LookupDefault and carries def.
func (c *Config) Get(key string, def Value) Lookup {
	l := c.Lookup(key)
	if l.Kind == LookupMissing {
		return Lookup{Kind: LookupDefault, Value: def}
	}
	return l
}

// Int returns the integer stored under key, or def.
func (c *Config) Int(key string, def int64) int64 {
	if v, ok := c.mapping.Get(key); ok {
		if i, ok := v.Int(); ok {
			return i
		}
	}
	return def
}

// Float returns the number stored under key, or def. Integers are widened.
func (c *Config) Float(key string, def float64) float64 {
	v, ok := c.mapping.Get(key)
	if !ok {
		return def
	}
	switch v.Kind() {
	case KindFloat:
		f, _ := v.Float()
		return f
	case KindInt:
		i, _ := v.Int()
		return float64(i)
	default:
		return def
	}
}

// String returns the string stored under key, or def.
func (c *Config) String(key string, def string) string {
	if v, ok := c.mapping.Get(key); ok {
		if s, ok := v.Str(); ok {
			return s
		}
	}
	return def
}
