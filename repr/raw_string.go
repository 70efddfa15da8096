package repr

import (
	"fmt"
	"io"
	"unicode/utf8"
)

type rawKind int

const (
	rawExplicit rawKind = iota
	rawSpanned
)

// RawString is an immutable handle on literal source text. It is either an
// owned string, or an unresolved Span into the buffer the text was parsed
// from. The zero value is the explicit empty string.
type RawString struct {
	kind rawKind
	text string
	span Span
}

// New returns an explicit RawString owning s.
func New(s string) RawString {
	return RawString{kind: rawExplicit, text: s}
}

// FromSpan returns a span-backed RawString. The range is not validated here;
// validation happens on Despan.
func FromSpan(span Span) RawString {
	return RawString{kind: rawSpanned, span: span}
}

// Str returns the owned text. It reports false for a span-backed raw string
// that has not been despanned yet; that is an expected transient state, not
// an error, and callers fall back to default rendering.
func (r *RawString) Str() (string, bool) {
	if r.kind != rawExplicit {
		return "", false
	}
	return r.text, true
}

// Span returns the byte range, if still span-backed.
func (r *RawString) Span() (Span, bool) {
	if r.kind != rawSpanned {
		return Span{}, false
	}
	return r.span, true
}

// Despan resolves a span-backed raw string into an owned copy of
// input[Start:End]. Despanning an explicit raw string is a no-op, so the call
// is idempotent. A span that is out of bounds or not on UTF-8 boundaries is a
// parser invariant violation and panics.
func (r *RawString) Despan(input []byte) {
	if r.kind != rawSpanned {
		return
	}
	s := r.span
	if s.Start > s.End || s.End > len(input) {
		panic(fmt.Sprintf("raw: span %s outside input of %d bytes", s, len(input)))
	}
	if !boundary(input, s.Start) || !boundary(input, s.End) {
		panic(fmt.Sprintf("raw: span %s splits a rune", s))
	}
	r.kind = rawExplicit
	r.text = string(input[s.Start:s.End])
	r.span = Span{}
}

func boundary(input []byte, i int) bool {
	if i == 0 || i == len(input) {
		return true
	}
	return utf8.RuneStart(input[i])
}

// Encode writes the resolved text to w: the owned text if explicit, else the
// span slice of input. A nil input stands for "source buffer unavailable" and
// writes nothing.
func (r *RawString) Encode(w io.Writer, input []byte) error {
	return r.EncodeWithDefault(w, input, "")
}

// EncodeWithDefault is Encode with a fallback for when neither owned text nor
// a source buffer is available.
func (r *RawString) EncodeWithDefault(w io.Writer, input []byte, def string) error {
	if s, ok := r.Str(); ok {
		return writeString(w, s)
	}
	if input != nil {
		s := r.span
		if s.Start > s.End || s.End > len(input) {
			panic(fmt.Sprintf("raw: span %s outside input of %d bytes", s, len(input)))
		}
		_, err := w.Write(input[s.Start:s.End])
		return err
	}
	return writeString(w, def)
}

func (r RawString) String() string {
	if s, ok := r.Str(); ok {
		return s
	}
	return fmt.Sprintf("<span %s>", r.span)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
