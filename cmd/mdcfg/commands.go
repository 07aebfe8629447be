package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/shcv/mdcfg"
	"github.com/shcv/mdcfg/internal/source"
)

var errKeyNotFound = errors.New("key not found")

type cli struct {
	format string
	indent string
	out    io.Writer
	logger *zap.Logger
}

// load reads and parses one document.
func (c *cli) load(path string) (*mdcfg.Config, error) {
	text, err := source.Load(path)
	if err != nil {
		return nil, err
	}

	cfg, err := mdcfg.Parse(text, mdcfg.WithIndent(c.indent), mdcfg.WithLogger(c.logger.With(zap.String("file", path))))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c *cli) flatten(path string) error {
	cfg, err := c.load(path)
	if err != nil {
		return err
	}
	return c.writePaths(cfg.Paths())
}

func (c *cli) table(path string) error {
	cfg, err := c.load(path)
	if err != nil {
		return err
	}
	return c.writePaths(cfg.Leaves())
}

func (c *cli) dict(paths []string) error {
	merged := mdcfg.NewMapping()
	for _, path := range paths {
		cfg, err := c.load(path)
		if err != nil {
			return err
		}
		merged = mdcfg.Merge(merged, cfg.All())
	}
	c.logger.Debug("mappings merged", zap.Int("files", len(paths)), zap.Int("entries", merged.Len()))
	return c.writeMapping(merged)
}

func (c *cli) get(path, key string, def *string) error {
	cfg, err := c.load(path)
	if err != nil {
		return err
	}

	var l mdcfg.Lookup
	if def != nil {
		l = cfg.Get(key, mdcfg.ParseValue(*def))
	} else {
		l = cfg.Lookup(key)
	}

	switch l.Kind {
	case mdcfg.LookupSection:
		return c.writeMapping(l.Section)
	case mdcfg.LookupValue, mdcfg.LookupDefault:
		return c.writeValue(l.Value)
	default:
		return fmt.Errorf("%w: %q", errKeyNotFound, key)
	}
}

func (c *cli) nest(path string) error {
	cfg, err := c.load(path)
	if err != nil {
		return err
	}
	if c.format == "yaml" {
		return c.encodeYAML(cfg.All().Nested())
	}
	return c.encodeJSON(cfg.All().Nested())
}

func (c *cli) reformat(path, unit string) error {
	cfg, err := c.load(path)
	if err != nil {
		return err
	}
	if unit == "" {
		unit = cfg.Indent()
	}
	doc, err := mdcfg.Marshal(cfg.All(), unit)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	_, err = io.WriteString(c.out, doc)
	return err
}

func (c *cli) writePaths(paths []mdcfg.Path) error {
	switch c.format {
	case "json":
		return c.encodeJSON(paths)
	case "yaml":
		return c.encodeYAML(paths)
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(c.out, p.String()); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) writeMapping(m *mdcfg.Mapping) error {
	switch c.format {
	case "json":
		return c.encodeJSON(m)
	case "yaml":
		return c.encodeYAML(m)
	}
	for _, e := range m.Entries() {
		if _, err := fmt.Fprintf(c.out, "%s: %s\n", e.Key, e.Value.Text()); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) writeValue(v mdcfg.Value) error {
	switch c.format {
	case "json":
		return c.encodeJSON(v)
	case "yaml":
		return c.encodeYAML(v)
	}
	_, err := fmt.Fprintln(c.out, v.Text())
	return err
}

func (c *cli) encodeJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(c.out, string(output))
	return err
}

func (c *cli) encodeYAML(v any) error {
	enc := yaml.NewEncoder(c.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return enc.Close()
}
