package ast

import (
	"bytes"
	"testing"

	"github.com/kolkov/mwscript/internal/token"
	"github.com/kolkov/mwscript/internal/types"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want []byte
	}{
		{"float", &FloatLit{Raw: "2.5"}, []byte(" 2.5")},
		{"local", &LocalVar{Name: "x", Ref: types.VarRef{Kind: types.KindShort, Index: 1}},
			[]byte{' ', 's', 1, 0}},
		{"global", &GlobalVar{Name: "Day"}, []byte{' ', 'G', 3, 'D', 'a', 'y'}},
		{"foreign", &ForeignRef{Source: "bob.x", Object: "bob", Ref: types.VarRef{Kind: types.KindFloat, Index: 2}},
			[]byte{' ', 'r', 3, 'b', 'o', 'b', 'f', 2, 0}},
		{"call", &Call{Source: "getsecundusphase", Code: []byte{0x01, 0x02}},
			[]byte{' ', 'X', 0x01, 0x02}},
		{"binary", &BinaryExpr{
			Op:   token.ADD,
			Left: &FloatLit{Raw: "1"},
			Right: &BinaryExpr{
				Op:    token.MUL,
				Left:  &FloatLit{Raw: "2"},
				Right: &FloatLit{Raw: "3"},
			},
		}, []byte(" 1 2 3 * +")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bytes(tt.expr); !bytes.Equal(got, tt.want) {
				t.Errorf("Bytes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStackString(t *testing.T) {
	e := &BinaryExpr{
		Op: token.SUB,
		Left: &BinaryExpr{
			Op:    token.DIV,
			Left:  &LocalVar{Name: "gold"},
			Right: &FloatLit{Raw: "2"},
		},
		Right: &GlobalVar{Name: "GameHour"},
	}
	if got, want := StackString(e), " gold 2 / GameHour -"; got != want {
		t.Errorf("StackString() = %q, want %q", got, want)
	}
}

func TestWalk(t *testing.T) {
	e := &BinaryExpr{
		Op:    token.ADD,
		Left:  &Call{Source: "getpos x"},
		Right: &BinaryExpr{Op: token.MUL, Left: &FloatLit{Raw: "2"}, Right: &LocalVar{Name: "a"}},
	}
	var order []string
	Walk(e, func(n Expr) { order = append(order, n.Content()) })
	want := []string{"getpos x", "2", "a", "*", "+"}
	if len(order) != len(want) {
		t.Fatalf("Walk visited %q", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Walk[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}
