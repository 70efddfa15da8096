package tomlkeep

import (
	"errors"
	"strings"
	"testing"
)

func TestLineCol(t *testing.T) {
	pd := NewPosDoc([]byte("ab\ncde\nf"))
	tests := []struct {
		off, line, col int
	}{
		{off: 0, line: 0, col: 0},
		{off: 1, line: 0, col: 1},
		{off: 3, line: 1, col: 0},
		{off: 5, line: 1, col: 2},
		{off: 7, line: 2, col: 0},
	}
	for _, tc := range tests {
		l, c := pd.LineCol(tc.off)
		if l != tc.line || c != tc.col {
			t.Errorf("off %d: got (%d,%d) want (%d,%d)", tc.off, l, c, tc.line, tc.col)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	pd := NewPosDoc([]byte("'abc"))
	err := NewError(ErrUnterminated, pd.Pos(0))
	if !errors.Is(err, ErrUnterminated) {
		t.Error("error does not unwrap to its sentinel")
	}
	if !strings.Contains(err.Error(), "unterminated") {
		t.Errorf("message %q", err.Error())
	}
	if !strings.Contains(err.Error(), "offset 0") {
		t.Errorf("message %q lacks position", err.Error())
	}
}
