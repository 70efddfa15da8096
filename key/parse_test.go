package key

import (
	"errors"
	"strings"
	"testing"

	tomlkeep "github.com/tomlkeep/go-tomlkeep"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		key    string
		prefix string
		suffix string
		repr   string
	}{
		{in: "bare_key", key: "bare_key", repr: "bare_key"},
		{in: "  'literal key'  ", key: "literal key", prefix: "  ", suffix: "  ", repr: "'literal key'"},
		{in: `"basic key"`, key: "basic key", repr: `"basic key"`},
		{in: "\t x \t", key: "x", prefix: "\t ", suffix: " \t", repr: "x"},
		{in: `"esc\t\"é"`, key: "esc\t\"é", repr: `"esc\t\"é"`},
		{in: `"\U0001F600"`, key: "\U0001F600", repr: `"\U0001F600"`},
		{in: `''`, key: "", repr: `''`},
		{in: `""`, key: "", repr: `""`},
		{in: "1234", key: "1234", repr: "1234"},
		{in: "key # note", key: "key", suffix: " # note", repr: "key"},
		{in: "'k' \t# c: #x", key: "k", suffix: " \t# c: #x", repr: "'k'"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			k, err := Parse(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if k.Get() != tc.key {
				t.Errorf("key got %q want %q", k.Get(), tc.key)
			}
			if k.DisplayRepr() != tc.repr {
				t.Errorf("repr got %q want %q", k.DisplayRepr(), tc.repr)
			}
			if s, _ := k.Decor().Prefix().Str(); s != tc.prefix {
				t.Errorf("prefix got %q want %q", s, tc.prefix)
			}
			if s, _ := k.Decor().Suffix().Str(); s != tc.suffix {
				t.Errorf("suffix got %q want %q", s, tc.suffix)
			}
			// parsed keys are despanned: round trip without the input
			if k.String() != tc.in {
				t.Errorf("round trip got %q want %q", k.String(), tc.in)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "", want: nil},
		{in: "   ", want: nil},
		{in: "invalid key", want: nil},
		{in: "a.b", want: nil},
		{in: "'unterminated", want: tomlkeep.ErrUnterminated},
		{in: `"unterminated`, want: tomlkeep.ErrUnterminated},
		{in: `"bad \q escape"`, want: tomlkeep.ErrBadEscape},
		{in: `"bad \uZZZZ"`, want: tomlkeep.ErrBadUnicode},
		{in: `"surrogate \uD800"`, want: tomlkeep.ErrBadUnicode},
		{in: "\"ctl \x01\"", want: tomlkeep.ErrControl},
		{in: "'ctl \x01'", want: tomlkeep.ErrControl},
		{in: "'two\nlines'", want: tomlkeep.ErrUnterminated},
	}
	for _, tc := range tests {
		_, err := Parse(tc.in)
		if err == nil {
			t.Errorf("%q: no error", tc.in)
			continue
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Errorf("%q: got %v want %v", tc.in, err, tc.want)
		}
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		keys []string
	}{
		{in: "a", keys: []string{"a"}},
		{in: "a.b.c", keys: []string{"a", "b", "c"}},
		{in: `servers . "alpha" . port`, keys: []string{"servers", "alpha", "port"}},
		{in: `site."google.com"`, keys: []string{"site", "google.com"}},
		{in: "  a  .  'b c'  ", keys: []string{"a", "b c"}},
		{in: `3.14159`, keys: []string{"3", "14159"}},
		{in: "a.b # trailing", keys: []string{"a", "b"}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			ks, err := ParsePath(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if len(ks) != len(tc.keys) {
				t.Fatalf("got %d keys want %d", len(ks), len(tc.keys))
			}
			for i := range ks {
				if ks[i].Get() != tc.keys[i] {
					t.Errorf("key %d got %q want %q", i, ks[i].Get(), tc.keys[i])
				}
			}
			// lossless: joining the segments reproduces the input exactly
			parts := make([]string, len(ks))
			for i := range ks {
				parts[i] = ks[i].String()
			}
			if got := strings.Join(parts, "."); got != tc.in {
				t.Errorf("round trip got %q want %q", got, tc.in)
			}
		})
	}
}

func TestParsePathEmpty(t *testing.T) {
	_, err := ParsePath("")
	if !errors.Is(err, tomlkeep.ErrEmptyPath) {
		t.Errorf("got %v want %v", err, tomlkeep.ErrEmptyPath)
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"a.",
		".a",
		"a..b",
		"a b",
		"'x' y",
	} {
		if _, err := ParsePath(in); err == nil {
			t.Errorf("%q: no error", in)
		}
	}
}

func TestParsePathAtomicOnFailure(t *testing.T) {
	ks, err := ParsePath("good.'bad")
	if err == nil {
		t.Fatal("no error")
	}
	if ks != nil {
		t.Errorf("partial result returned: %v", ks)
	}
}

func TestParsedKeysDoNotRetainInput(t *testing.T) {
	k, err := Parse("  key  ")
	if err != nil {
		t.Fatal(err)
	}
	if r := k.AsRepr(); r != nil {
		if _, spanned := r.Span(); spanned {
			t.Error("parsed key repr still span-backed")
		}
	}
	if p := k.Decor().Prefix(); p != nil {
		if _, spanned := p.Span(); spanned {
			t.Error("parsed key prefix still span-backed")
		}
	}
}
