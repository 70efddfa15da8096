package repr

import (
	"strings"
	"testing"
)

func TestDecorZeroValue(t *testing.T) {
	var d Decor
	if d.Prefix() != nil || d.Suffix() != nil {
		t.Error("zero decor has explicit sides")
	}
}

func TestDecorClearRestoresDefault(t *testing.T) {
	d := NewDecor("# comment\n", " ")
	d.Clear()
	if d.Prefix() != nil || d.Suffix() != nil {
		t.Error("clear left explicit sides")
	}
	b := &strings.Builder{}
	if err := d.PrefixEncode(b, nil, ""); err != nil {
		t.Fatal(err)
	}
	if b.String() != "" {
		t.Errorf("cleared prefix encoded %q want empty", b.String())
	}
	b.Reset()
	if err := d.SuffixEncode(b, nil, "\t"); err != nil {
		t.Fatal(err)
	}
	if b.String() != "\t" {
		t.Errorf("cleared suffix encoded %q want default tab", b.String())
	}
}

func TestDecorEmptyOverrideIsNotUnset(t *testing.T) {
	// an explicit empty prefix must shadow the context default
	var d Decor
	d.SetPrefix(New(""))
	b := &strings.Builder{}
	if err := d.PrefixEncode(b, nil, "  "); err != nil {
		t.Fatal(err)
	}
	if b.String() != "" {
		t.Errorf("explicit empty prefix encoded %q want empty", b.String())
	}
}

func TestDecorEncode(t *testing.T) {
	d := NewDecor("  ", " # trailing")
	b := &strings.Builder{}
	if err := d.PrefixEncode(b, nil, "zzz"); err != nil {
		t.Fatal(err)
	}
	if err := d.SuffixEncode(b, nil, "zzz"); err != nil {
		t.Fatal(err)
	}
	if b.String() != "   # trailing" {
		t.Errorf("got %q", b.String())
	}
}

func TestDecorDespan(t *testing.T) {
	input := []byte("  key  ")
	var d Decor
	d.SetPrefix(FromSpan(NewSpan(0, 2)))
	d.SetSuffix(FromSpan(NewSpan(5, 7)))
	d.Despan(input)
	if s, ok := d.Prefix().Str(); !ok || s != "  " {
		t.Errorf("prefix got (%q, %v)", s, ok)
	}
	if s, ok := d.Suffix().Str(); !ok || s != "  " {
		t.Errorf("suffix got (%q, %v)", s, ok)
	}
	// despan with one side unset is a no-op for that side
	var half Decor
	half.SetPrefix(New("x"))
	half.Despan(input)
	if s, _ := half.Prefix().Str(); s != "x" {
		t.Errorf("prefix got %q", s)
	}
}
