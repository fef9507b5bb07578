package mwscript_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/kolkov/mwscript"
	"github.com/kolkov/mwscript/internal/gamedata"
)

const dataSet = `
globals: [DaysPassed]
npcs:
  - {id: Fargoth, script: FargothScript}
scripts:
  - id: FargothScript
    shorts: [state]
`

func tables(t *testing.T) *gamedata.DataSet {
	t.Helper()
	d, err := gamedata.Decode(strings.NewReader(dataSet), nil)
	if err != nil {
		t.Fatalf("gamedata.Decode() error = %v", err)
	}
	return d
}

func TestCompileScenarios(t *testing.T) {
	t.Run("set local", func(t *testing.T) {
		s, err := mwscript.Compile("begin Test\nshort Counter\nset Counter to 5\nend", nil)
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		if s.ID != "Test" || s.NumShorts != 1 || len(s.LocalVars) != 1 || s.LocalVars[0] != "Counter" {
			t.Errorf("Script = %+v", s)
		}
		want := []byte{0x05, 0x01, 's', 1, 0, 2, ' ', '5', 0x01, 0x01}
		if !bytes.Equal(s.Data, want) {
			t.Errorf("Data = % X, want % X", s.Data, want)
		}
	})

	t.Run("missing begin", func(t *testing.T) {
		s, err := mwscript.Compile("short X\nend", nil)
		if s != nil {
			t.Errorf("Compile() returned a script")
		}
		if !mwscript.IsStructural(err) {
			t.Errorf("error = %v, want structural", err)
		}
	})

	t.Run("empty if", func(t *testing.T) {
		s, err := mwscript.Compile("begin T\nif ( 1 == 1 )\nendif\nend", nil)
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		want := []byte{0x06, 0x01, 0, 7, ' ', '1', ' ', '=', '=', ' ', '1', 0x09, 0x01, 0x01, 0x01}
		if !bytes.Equal(s.Data, want) {
			t.Errorf("Data = % X, want % X", s.Data, want)
		}
	})

	t.Run("unknown function", func(t *testing.T) {
		_, err := mwscript.Compile("begin T\nNotARealFunction\nend", nil)
		var ce *mwscript.CompileError
		if !errors.As(err, &ce) {
			t.Fatalf("error = %v, want *CompileError", err)
		}
		if ce.Kind != mwscript.Reference || ce.Line != 2 || !strings.Contains(ce.Message, "unrecognized line") {
			t.Errorf("CompileError = %+v", ce)
		}
		if mwscript.IsStructural(err) {
			t.Error("IsStructural() = true for a reference error")
		}
	})

	t.Run("compare marker", func(t *testing.T) {
		in, err := mwscript.Compile("begin T\nif ( GetDistance player < 10 )\nendif\nend", nil)
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		out, err := mwscript.Compile("begin T\nGetDistance player\nend", nil)
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		// If, count, length, " X", then the command code
		if !bytes.Equal(in.Data[6:10], []byte{0x01, 0x10, 0x20, 0x72}) {
			t.Errorf("condition call = % X", in.Data[6:10])
		}
		if !bytes.Equal(out.Data[:3], []byte{0x01, 0x10, 6}) {
			t.Errorf("statement call = % X", out.Data[:3])
		}
	})
}

func TestCompileWithTables(t *testing.T) {
	cfg := &mwscript.Config{Globals: tables(t), Objects: tables(t)}
	s, err := mwscript.Compile("begin T\nset fargoth.state to DaysPassed\nend", cfg)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	want := []byte("\x05\x01r\x07Fargoths\x01\x00\x0d G\x0aDaysPassed\x01\x01")
	if !bytes.Equal(s.Data, want) {
		t.Errorf("Data = % X, want % X", s.Data, want)
	}

	if _, err := mwscript.Compile("begin T\nset fargoth.state to DaysPassed\nend", nil); err == nil {
		t.Error("Compile() without tables resolved a foreign variable")
	}
}

func TestCompileWarnings(t *testing.T) {
	var stderr bytes.Buffer
	cfg := &mwscript.Config{Filename: "test.mws", Stderr: &stderr}
	if _, err := mwscript.Compile("begin T\nshort x\nif ( x )\nendif\nend", cfg); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	want := "mwscript: test.mws:3: warning: no comparison operator"
	if !strings.HasPrefix(stderr.String(), want) {
		t.Errorf("stderr = %q, want prefix %q", stderr.String(), want)
	}

	// Logger takes precedence over Stderr
	var logged bytes.Buffer
	stderr.Reset()
	cfg.Logger = log.New(&logged, "", 0)
	if _, err := mwscript.Compile("begin T\nshort x\nif ( x )\nendif\nend", cfg); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if stderr.Len() != 0 || !strings.Contains(logged.String(), "warning") {
		t.Errorf("stderr = %q, logger = %q", stderr.String(), logged.String())
	}
}

func TestMustCompile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile() should panic on an invalid script")
		}
	}()

	_ = mwscript.MustCompile("begin T", nil) // missing end
}

func TestMustCompileValid(t *testing.T) {
	if s := mwscript.MustCompile("begin T\nend", nil); s == nil {
		t.Error("MustCompile() returned nil for a valid script")
	}
}

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&mwscript.CompileError{Line: 3, Message: "bad"}, "compile error at line 3: bad"},
		{&mwscript.CompileError{Message: "empty script"}, "compile error: empty script"},
		{&mwscript.VerifyError{ID: "T", Offset: 4, Message: "differs"}, "verify T: offset 4: differs"},
		{&mwscript.VerifyError{ID: "T", Offset: -1, Message: "renamed"}, "verify T: renamed"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
	if mwscript.Structural.String() != "structural" || mwscript.ErrorKind(7).String() != "ErrorKind(7)" {
		t.Error("unexpected ErrorKind names")
	}
}

func TestVerify(t *testing.T) {
	const src = "begin T\nshort x\nset x to x + 1\nend"
	stored := mwscript.MustCompile(src, nil)

	if err := mwscript.Verify(stored, nil); err != nil {
		t.Errorf("Verify() of a fresh script = %v", err)
	}

	tampered := *stored
	tampered.Data = bytes.Clone(stored.Data)
	tampered.Data[6] ^= 0xFF
	var ve *mwscript.VerifyError
	if err := mwscript.Verify(&tampered, nil); !errors.As(err, &ve) || ve.Offset != 6 {
		t.Errorf("Verify() of a flipped byte = %v, want offset 6", err)
	}

	truncated := *stored
	truncated.Data = stored.Data[:4]
	if err := mwscript.Verify(&truncated, nil); !errors.As(err, &ve) || ve.Offset != 4 {
		t.Errorf("Verify() of truncated data = %v, want offset 4", err)
	}

	renamed := *stored
	renamed.LocalVars = []string{"y"}
	if err := mwscript.Verify(&renamed, nil); !errors.As(err, &ve) || ve.Offset != -1 {
		t.Errorf("Verify() of renamed locals = %v", err)
	}

	broken := *stored
	broken.Text = "begin T"
	var ce *mwscript.CompileError
	if err := mwscript.Verify(&broken, nil); !errors.As(err, &ce) {
		t.Errorf("Verify() of broken text = %v, want *CompileError", err)
	}
}

func TestCompileAll(t *testing.T) {
	var sources []mwscript.Source
	for i := range 20 {
		text := fmt.Sprintf("begin S%d\nshort x\nset x to %d\nend", i, i)
		if i%5 == 0 {
			text = fmt.Sprintf("begin S%d\nBogus%d\nend", i, i)
		}
		sources = append(sources, mwscript.Source{Name: fmt.Sprintf("s%d.mws", i), Text: text})
	}

	res, err := mwscript.CompileAll(context.Background(), sources, &mwscript.Config{Workers: 4})
	if err != nil {
		t.Fatalf("CompileAll() error = %v", err)
	}
	for i, r := range res {
		if r.Name != sources[i].Name {
			t.Errorf("result %d is %s", i, r.Name)
		}
		if i%5 == 0 {
			if r.Err == nil || r.Script != nil {
				t.Errorf("result %d = %+v, want error", i, r)
			}
			continue
		}
		if r.Err != nil || r.Script.ID != fmt.Sprintf("S%d", i) {
			t.Errorf("result %d = %+v", i, r)
		}
	}
}

func TestCompileAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := mwscript.CompileAll(ctx, []mwscript.Source{{Text: "begin T\nend"}}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("CompileAll() error = %v, want context.Canceled", err)
	}
	if len(res) != 1 || !errors.Is(res[0].Err, context.Canceled) {
		t.Errorf("results = %+v", res)
	}
}
