// Package mdcfg implements an indentation-delimited configuration format.
//
// A document is plain text whose hierarchy is expressed purely through
// leading whitespace:
//
//	a:
//	    b: 1
//	    c: 2
//	d: 4
//
// No tree is built. Each non-blank line is turned into its ancestor chain
// (a Path), and Paths ending in "key: value" become entries of a flat,
// dotted-key Mapping:
//
//	Flatten  -> [["a:"], ["a:", "b: 1"], ["a:", "c: 2"], ["d: 4"]]
//	FlatDict -> {"a.b": 1, "a.c": 2, "d": 4}
//
// Config wraps both and answers exact and sub-tree lookups.
package mdcfg

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// DefaultIndent is the indent unit used when a document has no indented line.
const DefaultIndent = "  "

// ErrStructuralIndentation is matched by every *IndentError.
var ErrStructuralIndentation = errors.New("structural indentation error")

// IndentError reports a line indented more than one level deeper than its
// parent.
type IndentError struct {
	Line  int // 1-based line number in the document
	Level int // indent level of the offending line
	Depth int // depth of the current parent
}

func (e *IndentError) Error() string {
	return fmt.Sprintf("line %d: indent level %d exceeds parent depth %d by more than one", e.Line, e.Level, e.Depth)
}

func (e *IndentError) Unwrap() error {
	return ErrStructuralIndentation
}

// Option configures flattening.
type Option func(*options)

type options struct {
	indent string
	logger *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithIndent fixes the indent unit instead of detecting it. An empty unit
// keeps detection.
func WithIndent(unit string) Option {
	return func(o *options) {
		o.indent = unit
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Flatten returns one Path per non-blank line of text, in document order.
// On a structural indentation error no Paths are returned.
func Flatten(text string, opts ...Option) ([]Path, error) {
	o := newOptions(opts)
	return flatten(text, o.unit(text), o.logger)
}

// FlatDict flattens text and builds its dotted-key Mapping. Only lines of
// the form "key: value" with a non-empty value become entries. The key is
// the ancestor lines, each without its trailing ":", joined with dots and
// followed by the line's own key. Surrounding whitespace is trimmed from that
// last key, so "b : 1" is stored under "b". Values are coerced to int64 or
// float64 where possible.
func FlatDict(text string, opts ...Option) (*Mapping, error) {
	paths, err := Flatten(text, opts...)
	if err != nil {
		return nil, err
	}
	return buildMapping(paths), nil
}

// Config is a parsed document. It is immutable once built.
type Config struct {
	indent  string
	paths   []Path
	mapping *Mapping
}

// Parse flattens text once and keeps both the Paths and the Mapping.
func Parse(text string, opts ...Option) (*Config, error) {
	o := newOptions(opts)
	unit := o.unit(text)

	paths, err := flatten(text, unit, o.logger)
	if err != nil {
		return nil, err
	}

	m := buildMapping(paths)
	o.logger.Debug("document parsed",
		zap.Int("paths", len(paths)),
		zap.Int("entries", m.Len()),
	)
	return &Config{indent: unit, paths: paths, mapping: m}, nil
}

// Indent returns the indent unit the document was parsed with.
func (c *Config) Indent() string {
	return c.indent
}

// Paths returns a copy of the flattened Paths.
func (c *Config) Paths() []Path {
	out := make([]Path, len(c.paths))
	for i, p := range c.paths {
		out[i] = p.clone()
	}
	return out
}

// Leaves returns the Paths that produce Mapping entries.
func (c *Config) Leaves() []Path {
	return Leaves(c.paths)
}

// All returns a copy of the whole Mapping.
func (c *Config) All() *Mapping {
	return c.mapping.clone()
}

func (o options) unit(text string) string {
	if o.indent != "" {
		return o.indent
	}
	unit := detectIndent(text)
	o.logger.Debug("indent unit detected", zap.String("unit", fmt.Sprintf("%q", unit)))
	return unit
}
