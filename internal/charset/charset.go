// Package charset converts between UTF-8 and the single-byte encodings
// used by game data.
//
// Script text, object IDs and global names are stored in the game's
// legacy code page. Sources and data sets on disk are UTF-8, so every
// string reaching the compiler goes through a Codec first. This keeps
// length prefixes and string bytes identical to what the game writes.
package charset

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding names understood by Lookup.
const (
	CP1252 = "cp1252"
	UTF8   = "utf8"
)

// Codec converts strings to and from one legacy encoding.
// The zero value passes text through unchanged.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// Default is the Windows-1252 codec used by English game data.
var Default = &Codec{name: CP1252, enc: charmap.Windows1252}

// Lookup returns the codec for an encoding name. Names are
// case-insensitive and accept the common aliases.
func Lookup(name string) (*Codec, error) {
	switch strings.ToLower(name) {
	case "", CP1252, "windows-1252", "win1252":
		return Default, nil
	case UTF8, "utf-8":
		return &Codec{name: UTF8}, nil
	case "cp1250", "windows-1250":
		return &Codec{name: "cp1250", enc: charmap.Windows1250}, nil
	case "cp1251", "windows-1251":
		return &Codec{name: "cp1251", enc: charmap.Windows1251}, nil
	}
	return nil, fmt.Errorf("charset: unknown encoding %q", name)
}

// Name returns the canonical name of the codec.
func (c *Codec) Name() string {
	if c.name == "" {
		return UTF8
	}
	return c.name
}

// Encode converts UTF-8 text to the legacy encoding. Characters the code
// page cannot represent are an error.
func (c *Codec) Encode(s string) (string, error) {
	if c.enc == nil {
		return s, nil
	}
	out, err := c.enc.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("charset: encode to %s: %w", c.Name(), err)
	}
	return out, nil
}

// Decode converts legacy bytes to UTF-8.
func (c *Codec) Decode(b []byte) (string, error) {
	if c.enc == nil {
		return string(b), nil
	}
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("charset: decode from %s: %w", c.Name(), err)
	}
	return string(out), nil
}

// NewReader returns a reader yielding the legacy encoding of the UTF-8
// text on r.
func (c *Codec) NewReader(r io.Reader) io.Reader {
	if c.enc == nil {
		return r
	}
	return transform.NewReader(r, c.enc.NewEncoder())
}

// NewWriter returns a writer that decodes legacy bytes written to it and
// passes UTF-8 on to w. Close flushes pending output; it does not close w.
func (c *Codec) NewWriter(w io.Writer) io.WriteCloser {
	if c.enc == nil {
		return nopCloser{w}
	}
	return transform.NewWriter(w, c.enc.NewDecoder())
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
