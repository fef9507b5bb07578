// Package gamedata holds the game records a script compiler consults:
// global variables, objects that can carry scripts and the scripts
// themselves with their typed local variables.
//
// A data set is usually loaded from YAML:
//
//	globals: [DaysPassed, GameHour]
//	activators:
//	  - {id: Ald_Door, script: DoorScript}
//	npcs:
//	  - {id: fargoth, script: FargothScript}
//	scripts:
//	  - id: FargothScript
//	    shorts: [state]
//	    floats: [timer]
//
// All lookups are case-insensitive. A DataSet is read-only after
// construction and safe for concurrent use.
package gamedata

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kolkov/mwscript/internal/lexer"
	"github.com/kolkov/mwscript/internal/semantic"
	"github.com/kolkov/mwscript/internal/types"
)

// File is the on-disk layout of a data set.
type File struct {
	Globals    []string `yaml:"globals"`
	Activators []Object `yaml:"activators"`
	NPCs       []Object `yaml:"npcs"`
	Creatures  []Object `yaml:"creatures"`
	Statics    []Object `yaml:"statics"`
	Containers []Object `yaml:"containers"`
	Scripts    []Script `yaml:"scripts"`
}

// Object is a placeable record. Statics never carry a script.
type Object struct {
	ID     string `yaml:"id"`
	Script string `yaml:"script,omitempty"`
}

// Script is a stored script record. Text and Data (hex bytecode) are
// optional and only used to verify the compiler against stored output.
type Script struct {
	ID     string   `yaml:"id"`
	Shorts []string `yaml:"shorts,omitempty"`
	Longs  []string `yaml:"longs,omitempty"`
	Floats []string `yaml:"floats,omitempty"`
	Text   string   `yaml:"text,omitempty"`
	Data   string   `yaml:"data,omitempty"`
}

// Locals returns the script's local variable table.
func (s *Script) Locals() semantic.ScriptLocals {
	names := make([]string, 0, len(s.Shorts)+len(s.Longs)+len(s.Floats))
	names = append(names, s.Shorts...)
	names = append(names, s.Longs...)
	names = append(names, s.Floats...)
	return semantic.ScriptLocals{
		ID:        s.ID,
		NumShorts: len(s.Shorts),
		NumLongs:  len(s.Longs),
		NumFloats: len(s.Floats),
		Names:     names,
	}
}

// ErrEmptyID is returned for records without an ID.
var ErrEmptyID = errors.New("gamedata: record without id")

// DataSet indexes a File for lookup. It implements semantic.Globals and
// semantic.Objects.
type DataSet struct {
	globals map[string]string

	// object tables in lookup order
	activators map[string]Object
	npcs       map[string]Object
	creatures  map[string]Object
	statics    map[string]Object
	containers map[string]Object

	scripts map[string]semantic.ScriptLocals
	records []Script
}

var (
	_ semantic.Globals = (*DataSet)(nil)
	_ semantic.Objects = (*DataSet)(nil)
)

// New indexes f. Later records with a duplicate ID replace earlier ones,
// as later plugins override earlier ones in the game.
func New(f *File) (*DataSet, error) {
	d := &DataSet{
		globals: make(map[string]string, len(f.Globals)),
		scripts: make(map[string]semantic.ScriptLocals, len(f.Scripts)),
		records: f.Scripts,
	}
	for _, g := range f.Globals {
		if g == "" {
			return nil, fmt.Errorf("globals: %w", ErrEmptyID)
		}
		d.globals[lexer.Lower(g)] = g
	}

	var err error
	tables := []struct {
		name    string
		objects []Object
		dst     *map[string]Object
	}{
		{"activators", f.Activators, &d.activators},
		{"npcs", f.NPCs, &d.npcs},
		{"creatures", f.Creatures, &d.creatures},
		{"statics", f.Statics, &d.statics},
		{"containers", f.Containers, &d.containers},
	}
	for _, t := range tables {
		if *t.dst, err = index(t.name, t.objects); err != nil {
			return nil, err
		}
	}

	for i := range f.Scripts {
		s := &f.Scripts[i]
		if s.ID == "" {
			return nil, fmt.Errorf("scripts[%d]: %w", i, ErrEmptyID)
		}
		d.scripts[lexer.Lower(s.ID)] = s.Locals()
	}
	return d, nil
}

func index(name string, objects []Object) (map[string]Object, error) {
	m := make(map[string]Object, len(objects))
	for i, o := range objects {
		if o.ID == "" {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, ErrEmptyID)
		}
		m[lexer.Lower(o.ID)] = o
	}
	return m, nil
}

// Decode reads a YAML data set from r. Every string is passed through
// conv, which may be nil, before indexing.
func Decode(r io.Reader, conv func(string) (string, error)) (*DataSet, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("gamedata: %w", err)
	}
	if conv != nil {
		if err := f.convert(conv); err != nil {
			return nil, err
		}
	}
	return New(&f)
}

// Load reads a YAML data set from a file.
func Load(path string, conv func(string) (string, error)) (*DataSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d, err := Decode(file, conv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (f *File) convert(conv func(string) (string, error)) error {
	var err error
	do := func(s *string) {
		if err == nil {
			*s, err = conv(*s)
		}
	}
	for i := range f.Globals {
		do(&f.Globals[i])
	}
	for _, objects := range [][]Object{f.Activators, f.NPCs, f.Creatures, f.Statics, f.Containers} {
		for i := range objects {
			do(&objects[i].ID)
			do(&objects[i].Script)
		}
	}
	for i := range f.Scripts {
		s := &f.Scripts[i]
		do(&s.ID)
		do(&s.Text)
		for _, names := range [][]string{s.Shorts, s.Longs, s.Floats} {
			for j := range names {
				do(&names[j])
			}
		}
	}
	if err != nil {
		return fmt.Errorf("gamedata: %w", err)
	}
	return nil
}

// HasGlobal reports whether a global variable exists.
func (d *DataSet) HasGlobal(name string) bool {
	_, ok := d.globals[lexer.Lower(name)]
	return ok
}

// GlobalID returns the stored spelling of a global, or name if unknown.
func (d *DataSet) GlobalID(name string) string {
	if id, ok := d.globals[lexer.Lower(name)]; ok {
		return id
	}
	return name
}

// ForeignVariable resolves a local variable of the script attached to an
// activator, NPC, creature or container, searched in that order. The
// first object found decides; statics carry no script.
func (d *DataSet) ForeignVariable(objectID, varName string) types.VarRef {
	key := lexer.Lower(objectID)
	for _, table := range []map[string]Object{d.activators, d.npcs, d.creatures, d.containers} {
		o, ok := table[key]
		if !ok {
			continue
		}
		s, ok := d.scripts[lexer.Lower(o.Script)]
		if !ok {
			return types.Global
		}
		return s.Lookup(varName)
	}
	return types.Global
}

// CanonicalID returns the stored spelling of an object ID. Activators,
// NPCs, creatures, statics and containers are searched in that order.
func (d *DataSet) CanonicalID(objectID string) string {
	key := lexer.Lower(objectID)
	for _, table := range []map[string]Object{d.activators, d.npcs, d.creatures, d.statics, d.containers} {
		if o, ok := table[key]; ok {
			return o.ID
		}
	}
	return objectID
}

// Script returns the locals of a script by ID.
func (d *DataSet) Script(id string) (semantic.ScriptLocals, bool) {
	s, ok := d.scripts[lexer.Lower(id)]
	return s, ok
}

// Scripts returns the script records in file order.
func (d *DataSet) Scripts() []Script {
	return d.records
}
