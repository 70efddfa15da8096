package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{in: "t", want: TextFormat},
		{in: "text", want: TextFormat},
		{in: "j", want: JSONFormat},
		{in: "json", want: JSONFormat},
		{in: "y", want: YAMLFormat},
		{in: "yaml", want: YAMLFormat},
	}
	for _, tc := range tests {
		f, err := ParseFormat(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if f != tc.want {
			t.Errorf("%q: got %v want %v", tc.in, f, tc.want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v want %v", err, ErrBadFormat)
	}
}

func TestSuffix(t *testing.T) {
	tests := []struct {
		f    Format
		want string
	}{
		{f: TextFormat, want: ".txt"},
		{f: JSONFormat, want: ".json"},
		{f: YAMLFormat, want: ".yaml"},
		{f: Format(99), want: ""},
	}
	for _, tc := range tests {
		if got := tc.f.Suffix(); got != tc.want {
			t.Errorf("%v: got %q want %q", tc.f, got, tc.want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("got %v want %v", back, f)
		}
	}
}
