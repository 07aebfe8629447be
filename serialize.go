package mdcfg

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrepresentableKey is returned by Marshal for keys that would be read
// back differently.
var ErrUnrepresentableKey = errors.New("key cannot be written as a document line")

// Marshal renders m as an indented document using unit for one level
// (DefaultIndent when empty). Section headers are written whenever the
// dotted prefix changes. Key segments containing ":" are rejected with
// ErrUnrepresentableKey, since the first colon of a line always splits key
// from value. For every Mapping Marshal accepts,
// FlatDict(out, WithIndent(unit)) reproduces m.
func Marshal(m *Mapping, unit string) (string, error) {
	if unit == "" {
		unit = DefaultIndent
	}

	var b strings.Builder
	var open []string
	for _, e := range m.Entries() {
		keys := strings.Split(e.Key, ".")
		for _, k := range keys {
			if strings.Contains(k, ":") {
				return "", fmt.Errorf("%w: %q", ErrUnrepresentableKey, e.Key)
			}
		}
		sections, last := keys[:len(keys)-1], keys[len(keys)-1]

		for depth := sharedPrefix(open, sections); depth < len(sections); depth++ {
			writeLine(&b, unit, depth, sections[depth]+":")
		}
		open = sections

		writeLine(&b, unit, len(sections), last+": "+e.Value.Text())
	}
	return b.String(), nil
}

// writeLine writes one line at the given depth.
func writeLine(b *strings.Builder, unit string, depth int, content string) {
	b.WriteString(strings.Repeat(unit, depth))
	b.WriteString(content)
	b.WriteString("\n")
}

// sharedPrefix returns how many leading elements a and b have in common.
func sharedPrefix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
