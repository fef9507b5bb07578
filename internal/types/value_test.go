package types

import (
	"math"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
		tag  byte
	}{
		{KindGlobal, "global", 0},
		{KindShort, "short", 's'},
		{KindLong, "long", 'l'},
		{KindFloat, "float", 'f'},
		{Kind(99), "unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.kind.Tag(); got != tt.tag {
				t.Errorf("Tag() = %q, want %q", got, tt.tag)
			}
		})
	}
}

func TestVarRefIsLocal(t *testing.T) {
	if Global.IsLocal() {
		t.Error("Global.IsLocal() = true")
	}
	if !(VarRef{Kind: KindFloat, Index: 1}).IsLocal() {
		t.Error("float ref is not local")
	}
}

func TestParseShort(t *testing.T) {
	tests := []struct {
		input string
		want  int16
		ok    bool
	}{
		{"0", 0, true},
		{"5", 5, true},
		{"-5", -5, true},
		{"32767", 32767, true},
		{"-32767", -32767, true},
		{"32768", 0, false},
		{"-32768", 0, false},
		{"100000", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"1.5", 0, false},
		{"12a", 0, false},
		{"+3", 0, false},
		{" 3", 0, false},
		{"007", 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseShort(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseShort(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseShort(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLong(t *testing.T) {
	tests := []struct {
		input string
		want  int32
		ok    bool
	}{
		{"2147483647", math.MaxInt32, true},
		{"-2147483647", -math.MaxInt32, true},
		{"2147483648", 0, false},
		{"40000", 40000, true},
		{"-", 0, false},
		{"", 0, false},
		{"1e5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLong(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseLong(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseLong(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float32
		ok    bool
	}{
		{"0", 0, true},
		{"1", 1, true},
		{"5", 5, true},
		{"-2", -2, true},
		{"1.5", 1.5, true},
		{"-0.25", -0.25, true},
		{"1.", 1, true},
		{".", 0, true},
		{".5", 0.5, true},
		{"100.125", 100.125, true},
		{"", 0, false},
		{"-", 0, false},
		{"1.2.3", 0, false},
		{"1e3", 0, false},
		{"abc", 0, false},
		{"1,5", 0, false},
		{"--1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFloat(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseFloat(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseFloat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFloatOverflow(t *testing.T) {
	// 40 digits exceeds float32 range.
	huge := "1000000000000000000000000000000000000000"
	if _, ok := ParseFloat(huge); ok {
		t.Errorf("ParseFloat(%q) accepted an out-of-range value", huge)
	}
	if _, ok := ParseFloat("-" + huge); ok {
		t.Errorf("ParseFloat(-%q) accepted an out-of-range value", huge)
	}
}
