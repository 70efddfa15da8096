package repr

import "io"

// Repr is the literal textual encoding of exactly one value or key, e.g. the
// bytes `"hello"` or `42`. A Repr is constructed unchecked: the caller
// guarantees the text is syntactically valid for whatever it represents.
type Repr struct {
	raw RawString
}

func NewUnchecked(raw RawString) Repr {
	return Repr{raw: raw}
}

func (r *Repr) Raw() *RawString {
	return &r.raw
}

func (r *Repr) Span() (Span, bool) {
	return r.raw.Span()
}

func (r *Repr) Despan(input []byte) {
	r.raw.Despan(input)
}

func (r *Repr) Encode(w io.Writer, input []byte) error {
	return r.raw.Encode(w, input)
}
