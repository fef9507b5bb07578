package mwscript

import (
	"io"
	"log"
	"runtime"

	"github.com/kolkov/mwscript/internal/semantic"
	"github.com/kolkov/mwscript/internal/token"
	"github.com/kolkov/mwscript/internal/types"
)

// GlobalTable gives read access to the game's global variables.
type GlobalTable = semantic.Globals

// ObjectTable gives read access to game objects and the local variables
// of their scripts.
type ObjectTable = semantic.Objects

// VarRef is a typed reference to a local variable slot, as returned by
// ObjectTable.ForeignVariable.
type VarRef = types.VarRef

// Local variable kinds.
const (
	NotLocal = types.KindGlobal
	Short    = types.KindShort
	Long     = types.KindLong
	Float    = types.KindFloat
)

// Config holds configuration options for compilation.
type Config struct {
	// Globals resolves global variable names.
	// If nil, no globals exist.
	Globals GlobalTable

	// Objects resolves object IDs and their scripts' variables.
	// If nil, no objects exist and IDs are used as written.
	Objects ObjectTable

	// Filename names the source in warnings (optional).
	Filename string

	// Stderr receives warnings through a logger with prefix "mwscript: ".
	// If nil, warnings are discarded.
	Stderr io.Writer

	// Logger receives warnings. It takes precedence over Stderr.
	Logger *log.Logger

	// Workers is the number of concurrent compilations in CompileAll.
	// Default: runtime.NumCPU()
	Workers int
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Logger == nil && c.Stderr != nil {
		c.Logger = log.New(c.Stderr, "mwscript: ", 0)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// warner returns the warning sink for the configured logger.
func (c *Config) warner() semantic.Warner {
	if c.Logger == nil {
		return nil
	}
	logger := c.Logger
	return func(pos token.Position, msg string) {
		if pos.IsValid() {
			logger.Printf("%s: warning: %s", pos, msg)
			return
		}
		logger.Printf("warning: %s", msg)
	}
}
