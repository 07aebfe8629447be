package mdcfg

import (
	"encoding/json"
	"testing"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
		want any
	}{
		{"5", KindInt, int64(5)},
		{" -12 ", KindInt, int64(-12)},
		{"+7", KindInt, int64(7)},
		{"5.2", KindFloat, 5.2},
		{".5", KindFloat, 0.5},
		{"3.", KindFloat, 3.0},
		{"foo", KindString, "foo"},
		{"1.2.3", KindString, "1.2.3"},
		{"1e5", KindString, "1e5"},
		{"12abc", KindString, "12abc"},
		{"99999999999999999999", KindString, "99999999999999999999"},
		{"  spaced out  ", KindString, "spaced out"},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			v := coerce(tc.raw)
			if v.Kind() != tc.kind {
				t.Fatalf("kind: got %s, want %s", v.Kind(), tc.kind)
			}
			if v.Any() != tc.want {
				t.Errorf("value: got %#v, want %#v", v.Any(), tc.want)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	v := Int(3)
	if i, ok := v.Int(); !ok || i != 3 {
		t.Errorf("Int: got %d %v", i, ok)
	}
	if _, ok := v.Float(); ok {
		t.Errorf("Float should not match an int")
	}
	if _, ok := v.Str(); ok {
		t.Errorf("Str should not match an int")
	}

	var zero Value
	if s, ok := zero.Str(); !ok || s != "" {
		t.Errorf("zero Value should be the empty string")
	}
}

func TestValueText(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Int(42), "42"},
		{Float(5), "5.0"},
		{Float(0.75), "0.75"},
		{Float(-1e21), "-1000000000000000000000.0"},
		{String("foo"), "foo"},
	}

	for _, tc := range tests {
		if got := tc.v.Text(); got != tc.want {
			t.Errorf("Text(%#v) = %q, want %q", tc.v.Any(), got, tc.want)
		}
		if back := coerce(tc.v.Text()); back != tc.v {
			t.Errorf("coerce(%q) = %#v, want %#v", tc.v.Text(), back.Any(), tc.v.Any())
		}
	}
}

func TestValueJSON(t *testing.T) {
	b, err := json.Marshal([]Value{Int(1), Float(2.5), String("x")})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(b) != `[1,2.5,"x"]` {
		t.Errorf("got %s", b)
	}
}
