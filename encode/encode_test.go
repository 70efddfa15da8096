package encode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomlkeep/go-tomlkeep/key"
	"github.com/tomlkeep/go-tomlkeep/repr"
	"github.com/tomlkeep/go-tomlkeep/value"
)

func TestKeyPathRoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"a.b.c",
		`servers . "alpha" . port`,
		"  'literal key'  ",
		`site."google.com"`,
		"\t weird \t. '  ' ",
	}
	var got []string
	for _, in := range inputs {
		ks, err := key.ParsePath(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		b := &strings.Builder{}
		if err := KeyPath(b, ks); err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		got = append(got, b.String())
	}
	if diff := cmp.Diff(inputs, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestKeyDefaultDecor(t *testing.T) {
	k := key.New("name")
	b := &strings.Builder{}
	if err := Key(b, &k); err != nil {
		t.Fatal(err)
	}
	// key position defaults to a trailing space before "="
	if b.String() != "name " {
		t.Errorf("got %q want %q", b.String(), "name ")
	}
	b.Reset()
	if err := Key(b, &k, WithDefaults("", "")); err != nil {
		t.Fatal(err)
	}
	if b.String() != "name" {
		t.Errorf("got %q want %q", b.String(), "name")
	}
}

func TestValueEncode(t *testing.T) {
	f := value.New(int64(42))
	b := &strings.Builder{}
	if err := Value(b, f); err != nil {
		t.Fatal(err)
	}
	if b.String() != "42" {
		t.Errorf("got %q", b.String())
	}
	b.Reset()
	if err := Value(b, f, WithDefaults(DefaultValuePrefix, DefaultValueSuffix)); err != nil {
		t.Fatal(err)
	}
	if b.String() != " 42" {
		t.Errorf("got %q", b.String())
	}
}

func TestWithInputResolvesSpans(t *testing.T) {
	input := []byte(" 0x2A ")
	f := value.New(int64(42)).
		WithReprUnchecked(repr.NewUnchecked(repr.FromSpan(repr.NewSpan(1, 5))))
	f.Decor().SetPrefix(repr.FromSpan(repr.NewSpan(0, 1)))
	f.Decor().SetSuffix(repr.FromSpan(repr.NewSpan(5, 6)))

	b := &strings.Builder{}
	if err := Value(b, f, WithInput(input)); err != nil {
		t.Fatal(err)
	}
	if b.String() != " 0x2A " {
		t.Errorf("got %q want %q", b.String(), " 0x2A ")
	}
}

func TestColorsResolve(t *testing.T) {
	c := NewColors()
	for _, cls := range Classes() {
		for _, attr := range []ColorAttr{ValueColor, DecorColor, SepColor} {
			if c.Get(cls, attr) == nil {
				t.Errorf("no color func for class %d attr %d", cls, attr)
			}
		}
	}
}

func TestColorizedKeyPathKeepsStructure(t *testing.T) {
	ks, err := key.ParsePath("a.b")
	if err != nil {
		t.Fatal(err)
	}
	colors := &Colors{Default: func(s string, _ ...any) string { return s }}
	b := &strings.Builder{}
	if err := KeyPath(b, ks, WithColors(colors)); err != nil {
		t.Fatal(err)
	}
	if b.String() != "a.b" {
		t.Errorf("got %q", b.String())
	}
}
