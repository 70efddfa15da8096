package repr

import "io"

// Decor is the trivia surrounding one syntactic element: whitespace and
// comments before it (prefix) and after it (suffix). An unset side means "no
// explicit decoration recorded, emit the context default at encode time",
// which is distinct from an explicit empty override. The zero value has both
// sides unset.
type Decor struct {
	prefix *RawString
	suffix *RawString
}

// NewDecor returns a Decor with both sides explicitly set.
func NewDecor(prefix, suffix string) Decor {
	p, s := New(prefix), New(suffix)
	return Decor{prefix: &p, suffix: &s}
}

// Clear resets both sides to unset, reverting the element to default
// formatting for its surroundings.
func (d *Decor) Clear() {
	d.prefix = nil
	d.suffix = nil
}

func (d *Decor) Prefix() *RawString {
	return d.prefix
}

func (d *Decor) Suffix() *RawString {
	return d.suffix
}

func (d *Decor) SetPrefix(p RawString) {
	d.prefix = &p
}

func (d *Decor) SetSuffix(s RawString) {
	d.suffix = &s
}

// PrefixEncode writes the prefix if set, else def verbatim.
func (d *Decor) PrefixEncode(w io.Writer, input []byte, def string) error {
	if d.prefix == nil {
		return writeString(w, def)
	}
	return d.prefix.EncodeWithDefault(w, input, def)
}

// SuffixEncode writes the suffix if set, else def verbatim.
func (d *Decor) SuffixEncode(w io.Writer, input []byte, def string) error {
	if d.suffix == nil {
		return writeString(w, def)
	}
	return d.suffix.EncodeWithDefault(w, input, def)
}

func (d *Decor) Despan(input []byte) {
	if d.prefix != nil {
		d.prefix.Despan(input)
	}
	if d.suffix != nil {
		d.suffix.Despan(input)
	}
}
