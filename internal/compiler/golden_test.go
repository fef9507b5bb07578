package compiler

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/kolkov/mwscript/internal/lexer"
	"github.com/kolkov/mwscript/internal/semantic"
	"github.com/kolkov/mwscript/internal/types"
)

// goldenCase is one script of a testdata/*.yaml file. Exactly one of Hex
// (hex bytes, blanks ignored) and Error (message substring) is set.
type goldenCase struct {
	Name    string         `yaml:"name"`
	Source  string         `yaml:"source"`
	Globals []string       `yaml:"globals"`
	Objects []goldenObject `yaml:"objects"`
	Hex     string         `yaml:"hex"`
	Error   string         `yaml:"error"`
}

type goldenObject struct {
	ID     string   `yaml:"id"`
	Shorts []string `yaml:"shorts"`
	Longs  []string `yaml:"longs"`
	Floats []string `yaml:"floats"`
}

type goldenTables struct {
	globals map[string]string
	objects map[string]semantic.ScriptLocals
}

func (g goldenTables) HasGlobal(name string) bool {
	_, ok := g.globals[lexer.Lower(name)]
	return ok
}

func (g goldenTables) GlobalID(name string) string { return g.globals[lexer.Lower(name)] }

func (g goldenTables) ForeignVariable(objectID, varName string) types.VarRef {
	s, ok := g.objects[lexer.Lower(objectID)]
	if !ok {
		return types.Global
	}
	return s.Lookup(varName)
}

func (g goldenTables) CanonicalID(id string) string {
	if s, ok := g.objects[lexer.Lower(id)]; ok {
		return s.ID
	}
	return id
}

func (c goldenCase) tables() goldenTables {
	g := goldenTables{
		globals: make(map[string]string),
		objects: make(map[string]semantic.ScriptLocals),
	}
	for _, name := range c.Globals {
		g.globals[lexer.Lower(name)] = name
	}
	for _, o := range c.Objects {
		names := append(append(append([]string(nil), o.Shorts...), o.Longs...), o.Floats...)
		g.objects[lexer.Lower(o.ID)] = semantic.ScriptLocals{
			ID:        o.ID,
			NumShorts: len(o.Shorts),
			NumLongs:  len(o.Longs),
			NumFloats: len(o.Floats),
			Names:     names,
		}
	}
	return g
}

func loadGolden(t *testing.T) map[string][]goldenCase {
	t.Helper()
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata/*.yaml files")
	}
	out := make(map[string][]goldenCase, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		var cases []goldenCase
		if err := yaml.Unmarshal(data, &cases); err != nil {
			t.Fatalf("%s: %v", file, err)
		}
		out[strings.TrimSuffix(filepath.Base(file), ".yaml")] = cases
	}
	return out
}

func TestGolden(t *testing.T) {
	for file, cases := range loadGolden(t) {
		for _, tc := range cases {
			t.Run(file+"/"+tc.Name, func(t *testing.T) {
				tables := tc.tables()
				res, err := Compile(tc.Source, Options{
					Filename: tc.Name,
					Globals:  tables,
					Objects:  tables,
				})

				if tc.Error != "" {
					if err == nil {
						t.Fatalf("Compile() succeeded, want error containing %q", tc.Error)
					}
					if !strings.Contains(err.Error(), tc.Error) {
						t.Errorf("error %q does not contain %q", err, tc.Error)
					}
					return
				}
				if err != nil {
					t.Fatalf("Compile() error = %v", err)
				}
				want, err := hex.DecodeString(strings.Join(strings.Fields(tc.Hex), ""))
				if err != nil {
					t.Fatalf("bad want hex: %v", err)
				}
				if !bytes.Equal(res.Data, want) {
					t.Errorf("Data =\n% X\nwant\n% X\n%s", res.Data, want, res.Disassemble())
				}
			})
		}
	}
}
