package mdcfg

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mapping is a flat dotted-key table that keeps first-insertion order.
// Setting an existing key replaces its value in place.
type Mapping struct {
	entries []Entry
	index   map[string]int // key -> position in entries
}

// Entry is one key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value Value
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{
		index: map[string]int{},
	}
}

// Set adds key or overwrites its value, keeping its original position.
func (m *Mapping) Set(key string, v Value) {
	if idx, ok := m.index[key]; ok {
		m.entries[idx].Value = v
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: v})
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	idx, ok := m.index[key]
	if !ok {
		return Value{}, false
	}
	return m.entries[idx].Value, true
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, m.Len())
	for i := range keys {
		keys[i] = m.entries[i].Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (m *Mapping) Entries() []Entry {
	out := make([]Entry, m.Len())
	if m != nil {
		copy(out, m.entries)
	}
	return out
}

// Map returns the entries as a plain map of int64, float64 and string values.
func (m *Mapping) Map() map[string]any {
	out := make(map[string]any, m.Len())
	for _, e := range m.Entries() {
		out[e.Key] = e.Value.Any()
	}
	return out
}

// Section returns the entries below prefix, with "prefix." removed from their
// keys. The result is empty when nothing lives under prefix.
func (m *Mapping) Section(prefix string) *Mapping {
	out := NewMapping()
	if prefix == "" {
		for _, e := range m.Entries() {
			out.Set(e.Key, e.Value)
		}
		return out
	}
	for _, e := range m.Entries() {
		if rest, ok := strings.CutPrefix(e.Key, prefix+"."); ok {
			out.Set(rest, e.Value)
		}
	}
	return out
}

func (m *Mapping) clone() *Mapping {
	return m.Section("")
}

// MarshalJSON encodes the Mapping as an object with keys in insertion order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, e := range m.Entries() {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// MarshalYAML encodes the Mapping as a YAML mapping in insertion order.
func (m *Mapping) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m.Entries() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
		val := &yaml.Node{}
		if err := val.Encode(e.Value.Any()); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}
