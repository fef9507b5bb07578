package charset

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"", CP1252, true},
		{"cp1252", CP1252, true},
		{"Windows-1252", CP1252, true},
		{"utf8", UTF8, true},
		{"UTF-8", UTF8, true},
		{"cp1251", "cp1251", true},
		{"latin9", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Lookup(tt.name)
			if (err == nil) != tt.ok {
				t.Fatalf("Lookup(%q) error = %v, want ok=%v", tt.name, err, tt.ok)
			}
			if tt.ok && c.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", c.Name(), tt.want)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		text   string
		legacy string
	}{
		{"plain ascii", "plain ascii"},
		{"Sadrith Mora – Wolverine Hall", "Sadrith Mora \x96 Wolverine Hall"},
		{"Dagoth Ur’s", "Dagoth Ur\x92s"},
		{"Açaí", "A\xe7a\xed"},
		{"€5", "\x805"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Default.Encode(tt.text)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got != tt.legacy {
				t.Errorf("Encode() = %q, want %q", got, tt.legacy)
			}
			back, err := Default.Decode([]byte(got))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if back != tt.text {
				t.Errorf("Decode() = %q, want %q", back, tt.text)
			}
		})
	}
}

func TestEncodeUnrepresentable(t *testing.T) {
	if _, err := Default.Encode("Вивек"); err == nil {
		t.Error("Encode of Cyrillic text to cp1252 succeeded")
	}
}

func TestPassthrough(t *testing.T) {
	c, err := Lookup(UTF8)
	if err != nil {
		t.Fatal(err)
	}
	const s = "Вивек"
	if got, _ := c.Encode(s); got != s {
		t.Errorf("Encode() = %q, want unchanged", got)
	}
	if got, _ := c.Decode([]byte(s)); got != s {
		t.Errorf("Decode() = %q, want unchanged", got)
	}
	var zero Codec
	if zero.Name() != UTF8 {
		t.Errorf("zero Codec name = %q", zero.Name())
	}
}

func TestStreams(t *testing.T) {
	in, err := io.ReadAll(Default.NewReader(strings.NewReader("café")))
	if err != nil {
		t.Fatal(err)
	}
	if string(in) != "caf\xe9" {
		t.Errorf("reader produced %q", in)
	}
	if _, err := io.ReadAll(Default.NewReader(strings.NewReader("日本"))); err == nil {
		t.Error("reader accepted text outside the code page")
	}

	var buf bytes.Buffer
	w := Default.NewWriter(&buf)
	if _, err := io.WriteString(w, "caf\xe9"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "café" {
		t.Errorf("writer produced %q", buf.String())
	}

	var raw bytes.Buffer
	pw := mustLookup(t, UTF8).NewWriter(&raw)
	io.WriteString(pw, "\xff")
	pw.Close()
	if raw.String() != "\xff" {
		t.Errorf("passthrough writer produced %q", raw.String())
	}
}

func mustLookup(t *testing.T, name string) *Codec {
	t.Helper()
	c, err := Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q) error = %v", name, err)
	}
	return c
}
