package mdcfg

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// indentPattern matches the first indented content line of a document.
var indentPattern = regexp.MustCompile(`(?m)^([ \t]+)[A-Za-z0-9_*]`)

// detectIndent returns the leading whitespace of the first indented line that
// starts with a letter, digit, underscore or asterisk, or DefaultIndent.
func detectIndent(text string) string {
	m := indentPattern.FindStringSubmatch(text)
	if m == nil {
		return DefaultIndent
	}
	return m[1]
}

// indentLevel counts how many whole copies of unit prefix line.
func indentLevel(line, unit string) int {
	if unit == "" {
		return 0
	}
	level := 0
	for {
		rest, ok := strings.CutPrefix(line, unit)
		if !ok {
			return level
		}
		line = rest
		level++
	}
}

// isBlank returns true if the line is empty or contains only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// flatten walks text line by line, carrying only the current parent chain.
func flatten(text, unit string, logger *zap.Logger) ([]Path, error) {
	var (
		paths  []Path
		parent Path
	)

	for i, line := range strings.Split(text, "\n") {
		if isBlank(line) {
			continue
		}

		level := indentLevel(line, unit)

		var prev Path
		if len(paths) > 0 {
			prev = paths[len(paths)-1]
		}

		next, ok := step(parent, prev, level)
		if !ok {
			err := &IndentError{Line: i + 1, Level: level, Depth: len(parent)}
			logger.Debug("flatten aborted", zap.Error(err))
			return nil, err
		}

		parent = next
		paths = append(paths, parent.child(strings.TrimSpace(line)))
	}

	logger.Debug("document flattened", zap.Int("paths", len(paths)))
	return paths, nil
}

// step computes the parent chain for a line at level, given the current
// parent and the Path emitted for the previous line. It reports false when
// level is more than one deeper than parent, or when the very first line is
// indented.
func step(parent, prev Path, level int) (Path, bool) {
	depth := len(parent)
	switch {
	case level == depth:
		return parent, true
	case level == depth+1:
		if prev == nil {
			return nil, false
		}
		return prev, true
	case level < depth:
		return parent[:level:level], true
	default:
		return nil, false
	}
}
