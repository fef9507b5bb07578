// mwsc - Morrowind script compiler
//
// Compiles script sources into game bytecode, or verifies the scripts
// stored in a data set by recompiling them.
// Uses manual argument parsing to accept both "-j 4" and "-j4".
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/coregx/coregex"

	"github.com/kolkov/mwscript"
	"github.com/kolkov/mwscript/internal/charset"
	"github.com/kolkov/mwscript/internal/gamedata"
)

// version is set at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	shortUsage = "usage: mwsc [-d data.yaml] [-e encoding] [-j N] [-filter regex] [-o dir] [-da] [file ...]\n" +
		"       mwsc -verify -d data.yaml [-e encoding] [-filter regex]"
	longUsage = `Compiling:
  -d data.yaml      game data: globals, objects and scripts (YAML)
  -e encoding       code page of compiled text: cp1252 (default), cp1250,
                    cp1251, utf8 (no conversion)
  -j N              compile N files in parallel (default: number of CPUs)
  -filter regex     only output scripts whose ID matches regex
  -o dir            write <ID>.scpt files (header and bytecode) to dir

Verifying:
  -verify           recompile the scripts stored in the data set and
                    compare them with their stored bytecode

Debugging arguments:
  -da               print bytecode listing and hex dump to stdout

Other:
  -h, --help        show this help message
  -version          show mwsc version and exit

With no files, the script is read from standard input.
`
)

type options struct {
	dataFile string
	encoding string
	workers  int
	filter   *coregex.Regexp
	outDir   string
	verify   bool
	dumpAsm  bool
	files    []string
}

//nolint:gocyclo,funlen // CLI argument parsing is inherently complex
func parseArgs(args []string) options {
	opts := options{encoding: charset.CP1252}

	need := func(i int, flag string) string {
		if i+1 >= len(args) {
			errorExitf("flag needs an argument: %s", flag)
		}
		return args[i+1]
	}
	setWorkers := func(s string) {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			errorExitf("invalid number of workers: %s", s)
		}
		opts.workers = n
	}
	setFilter := func(s string) {
		re, err := coregex.Compile(s)
		if err != nil {
			errorExitf("invalid filter %q: %v", s, err)
		}
		opts.filter = re
	}

	var i int
	for i = 0; i < len(args); i++ {
		// Stop on explicit end of args or first arg not prefixed with "-"
		arg := args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		switch arg {
		case "-d":
			opts.dataFile = need(i, arg)
			i++
		case "-e":
			opts.encoding = need(i, arg)
			i++
		case "-j":
			setWorkers(need(i, arg))
			i++
		case "-filter", "--filter":
			setFilter(need(i, arg))
			i++
		case "-o":
			opts.outDir = need(i, arg)
			i++
		case "-verify", "--verify":
			opts.verify = true
		case "-da":
			opts.dumpAsm = true
		case "-h", "--help":
			fmt.Printf("mwsc %s - Morrowind script compiler\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(0)
		case "-version", "--version":
			fmt.Printf("mwsc version %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
			os.Exit(0)
		default:
			// Handle flags with no space: -ddata.yaml, -ecp1252, -j4, -oout
			switch {
			case strings.HasPrefix(arg, "-j"):
				setWorkers(arg[2:])
			case strings.HasPrefix(arg, "-d"):
				opts.dataFile = arg[2:]
			case strings.HasPrefix(arg, "-e"):
				opts.encoding = arg[2:]
			case strings.HasPrefix(arg, "-o"):
				opts.outDir = arg[2:]
			default:
				errorExitf("flag provided but not defined: %s", arg)
			}
		}
	}
	opts.files = args[i:]

	if opts.verify && opts.dataFile == "" {
		errorExitf("-verify needs a data set (-d)")
	}
	return opts
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mwsc: ")

	opts := parseArgs(os.Args[1:])
	codec, err := charset.Lookup(opts.encoding)
	if err != nil {
		errorExit(err)
	}

	config := &mwscript.Config{Stderr: os.Stderr, Workers: opts.workers}
	var data *gamedata.DataSet
	if opts.dataFile != "" {
		data, err = gamedata.Load(opts.dataFile, codec.Encode)
		if err != nil {
			errorExit(err)
		}
		config.Globals = data
		config.Objects = data
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// compiled text is in the legacy encoding; the terminal gets UTF-8
	stdout := bufio.NewWriter(os.Stdout)
	out := codec.NewWriter(stdout)
	var failed bool
	if opts.verify {
		failed = verify(out, data, config, opts)
	} else {
		failed = compileFiles(ctx, out, codec, config, opts)
	}
	if err := out.Close(); err != nil {
		errorExit(err)
	}
	if err := stdout.Flush(); err != nil {
		errorExit(err)
	}
	if failed {
		os.Exit(1)
	}
}

// compileFiles compiles the named files, or standard input, and reports
// whether any of them failed.
func compileFiles(ctx context.Context, w io.Writer, codec *charset.Codec, config *mwscript.Config, opts options) bool {
	sources, failed := readSources(codec, opts.files)

	results, err := mwscript.CompileAll(ctx, sources, config)
	if err != nil {
		log.Printf("%v", err)
		failed = true
	}

	for _, r := range results {
		if r.Err != nil {
			if !errors.Is(r.Err, context.Canceled) {
				log.Printf("%s: %v", r.Name, r.Err)
			}
			failed = true
			continue
		}
		s := r.Script
		if opts.filter != nil && !opts.filter.MatchString(s.ID) {
			continue
		}
		if err := output(w, codec, s, opts); err != nil {
			log.Printf("%s: %v", r.Name, err)
			failed = true
		}
	}
	return failed
}

func readSources(codec *charset.Codec, files []string) ([]mwscript.Source, bool) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var (
		sources []mwscript.Source
		failed  bool
	)
	for _, name := range files {
		text, err := readSource(codec, name)
		if name == "-" {
			name = "<stdin>"
		}
		if err != nil {
			log.Printf("cannot read %s: %v", name, err)
			failed = true
			continue
		}
		sources = append(sources, mwscript.Source{Name: name, Text: text})
	}
	return sources, failed
}

// readSource reads a UTF-8 source file and returns it in the legacy
// encoding.
func readSource(codec *charset.Codec, name string) (string, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	content, err := io.ReadAll(codec.NewReader(r))
	return string(content), err
}

// output lists or writes one compiled script.
func output(w io.Writer, codec *charset.Codec, s *mwscript.Script, opts options) error {
	fmt.Fprintf(w, "%-32s %3d %3d %3d %6d  %x\n", s.ID, s.NumShorts, s.NumLongs, s.NumFloats, len(s.Data), s.Digest())
	if opts.dumpAsm {
		fmt.Fprintf(w, "%s\n%s\n", s.Disassemble(), s.Dump())
	}

	if opts.outDir == "" {
		return nil
	}
	id, err := codec.Decode([]byte(s.ID))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}
	out := append(s.Header(), s.Data...)
	return os.WriteFile(filepath.Join(opts.outDir, fileName(id)+".scpt"), out, 0o644)
}

// fileName replaces characters that cannot appear in file names.
func fileName(id string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(`/\:*?"<>|`, r) || r < ' ' {
			return '_'
		}
		return r
	}, id)
}

// verify recompiles every stored script with text and bytecode and
// reports whether any of them differ.
func verify(w io.Writer, data *gamedata.DataSet, config *mwscript.Config, opts options) bool {
	var failed bool
	var checked int
	for _, rec := range data.Scripts() {
		if rec.Text == "" || rec.Data == "" {
			continue
		}
		if opts.filter != nil && !opts.filter.MatchString(rec.ID) {
			continue
		}
		stored, err := storedScript(rec)
		if err != nil {
			log.Printf("%s: %v", rec.ID, err)
			failed = true
			continue
		}
		checked++
		if err := mwscript.Verify(stored, config); err != nil {
			log.Printf("%s: %v", rec.ID, err)
			failed = true
			continue
		}
		fmt.Fprintf(w, "ok  %s\n", rec.ID)
	}
	fmt.Fprintf(w, "%d scripts verified\n", checked)
	return failed
}

func storedScript(rec gamedata.Script) (*mwscript.Script, error) {
	code, err := hex.DecodeString(strings.Join(strings.Fields(rec.Data), ""))
	if err != nil {
		return nil, fmt.Errorf("stored bytecode: %w", err)
	}
	locals := rec.Locals()
	return &mwscript.Script{
		ID:        rec.ID,
		NumShorts: locals.NumShorts,
		NumLongs:  locals.NumLongs,
		NumFloats: locals.NumFloats,
		LocalVars: locals.Names,
		Data:      code,
		Text:      rec.Text,
	}, nil
}

// errorExitf prints formatted error message and exits with code 1
func errorExitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "mwsc: "+format+"\n", args...)
	os.Exit(1)
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "mwsc: %v\n", err)
	os.Exit(1)
}
