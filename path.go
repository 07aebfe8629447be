package mdcfg

import "strings"

// Path is the chain of trimmed line contents from the document root down to
// and including one line.
type Path []string

// String joins the chain with no separator, so ["a:", "b: 1"] renders as
// "a:b: 1".
func (p Path) String() string {
	return strings.Join(p, "")
}

// Last returns the line the Path was emitted for.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Depth returns the indent level of the line the Path was emitted for.
func (p Path) Depth() int {
	return len(p) - 1
}

// child returns a new Path extending p with content. p is never modified.
func (p Path) child(content string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = content
	return out
}

func (p Path) clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Leaves returns the Paths whose last line assigns a non-empty value, i.e.
// the ones FlatDict turns into entries. Section headers are dropped.
func Leaves(paths []Path) []Path {
	var out []Path
	for _, p := range paths {
		if _, _, ok := splitAssignment(p.Last()); ok {
			out = append(out, p.clone())
		}
	}
	return out
}

// splitAssignment splits "key: value" on the first colon. It reports false
// for lines without a colon or with nothing after it.
func splitAssignment(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", "", false
	}
	return key, value, true
}
