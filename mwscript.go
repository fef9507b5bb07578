package mwscript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kolkov/mwscript/internal/batch"
	"github.com/kolkov/mwscript/internal/compiler"
)

// Version is the mwscript version string.
const Version = "0.1.0"

// Compile compiles script source into bytecode.
// If config is nil, no globals or objects are known and warnings are
// discarded.
//
// Example:
//
//	s, err := mwscript.Compile("begin Test\nshort Counter\nset Counter to 5\nend", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.ID, len(s.Data))
func Compile(source string, config *Config) (*Script, error) {
	var cfg Config
	if config != nil {
		cfg = *config
	}
	cfg.applyDefaults()
	return compile(source, &cfg)
}

func compile(source string, cfg *Config) (*Script, error) {
	res, err := compiler.Compile(source, compiler.Options{
		Filename: cfg.Filename,
		Globals:  cfg.Globals,
		Objects:  cfg.Objects,
		Warn:     cfg.warner(),
	})
	if err != nil {
		// Convert compiler error to public type
		var ce *compiler.CompileError
		if errors.As(err, &ce) {
			kind := Reference
			if ce.Kind == compiler.Structural {
				kind = Structural
			}
			return nil, &CompileError{Line: ce.Pos.Line, Kind: kind, Message: ce.Message}
		}
		return nil, &CompileError{Message: err.Error()}
	}
	return newScript(res), nil
}

// MustCompile is like Compile but panics if the script cannot be compiled.
// It simplifies initialization of scripts known at build time.
func MustCompile(source string, config *Config) *Script {
	s, err := Compile(source, config)
	if err != nil {
		panic(err)
	}
	return s
}

// Verify recompiles stored.Text and compares the result with the stored
// ID, local variables and bytecode. A mismatch is reported as a
// *VerifyError; a script that no longer compiles returns its
// *CompileError.
func Verify(stored *Script, config *Config) error {
	fresh, err := Compile(stored.Text, config)
	if err != nil {
		return err
	}

	mismatch := func(offset int, format string, args ...any) error {
		return &VerifyError{ID: stored.ID, Offset: offset, Message: fmt.Sprintf(format, args...)}
	}
	if !strings.EqualFold(fresh.ID, stored.ID) {
		return mismatch(-1, "script is named %q", fresh.ID)
	}
	if fresh.NumShorts != stored.NumShorts || fresh.NumLongs != stored.NumLongs || fresh.NumFloats != stored.NumFloats {
		return mismatch(-1, "locals are %d/%d/%d, stored %d/%d/%d",
			fresh.NumShorts, fresh.NumLongs, fresh.NumFloats,
			stored.NumShorts, stored.NumLongs, stored.NumFloats)
	}
	if !slices.Equal(fresh.LocalVars, stored.LocalVars) {
		return mismatch(-1, "local names %q, stored %q", fresh.LocalVars, stored.LocalVars)
	}
	if off := firstDiff(fresh.Data, stored.Data); off >= 0 {
		return mismatch(off, "bytecode differs (%d bytes, digest %x; stored %d bytes)",
			len(fresh.Data), fresh.Digest(), len(stored.Data))
	}
	return nil
}

// firstDiff returns the first offset at which a and b differ, or -1.
func firstDiff(a, b []byte) int {
	if bytes.Equal(a, b) {
		return -1
	}
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Source is one input of CompileAll.
type Source struct {
	Name string // used in warnings
	Text string
}

// Result is the outcome of compiling one Source.
type Result struct {
	Name   string
	Script *Script
	Err    error
}

// CompileAll compiles many scripts concurrently using config.Workers
// goroutines. Compilations are independent; a failing source does not
// stop the others. Results are in input order. If ctx is cancelled,
// sources not yet compiled report ctx.Err() and so does CompileAll.
func CompileAll(ctx context.Context, sources []Source, config *Config) ([]Result, error) {
	var cfg Config
	if config != nil {
		cfg = *config
	}
	cfg.applyDefaults()

	res, err := batch.Run(ctx, sources, batch.Config{NumWorkers: cfg.Workers},
		func(_ context.Context, src Source) (*Script, error) {
			c := cfg
			c.Filename = src.Name
			return compile(src.Text, &c)
		})

	out := make([]Result, len(sources))
	for i, r := range res {
		out[i] = Result{Name: sources[i].Name, Script: r.Value, Err: r.Err}
	}
	return out, err
}
