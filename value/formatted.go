package value

import (
	"io"
	"strings"

	"github.com/tomlkeep/go-tomlkeep/repr"
)

// Formatted pairs a scalar value with its formatting: an optional explicit
// Repr and the surrounding Decor. A nil repr means "render with the scalar's
// default encoding", never "render nothing".
type Formatted[T Scalar] struct {
	value T
	repr  *repr.Repr
	decor repr.Decor
}

// New wraps v with default formatting: no explicit repr, unset decor.
func New[T Scalar](v T) *Formatted[T] {
	return &Formatted[T]{value: v}
}

func (f *Formatted[T]) Value() T {
	return f.value
}

// SetValue replaces the semantic value. It deliberately leaves any explicit
// repr in place; callers that want the repr to follow the new value call Fmt.
func (f *Formatted[T]) SetValue(v T) {
	f.value = v
}

// AsRepr returns the explicit repr, or nil when the value renders by default.
func (f *Formatted[T]) AsRepr() *repr.Repr {
	return f.repr
}

// DefaultRepr recomputes the default encoding of the current value. It is not
// cached and reflects the value even when a stale explicit repr exists.
func (f *Formatted[T]) DefaultRepr() repr.Repr {
	return DefaultRepr(f.value)
}

// DisplayRepr returns display-ready text: the explicit repr when it resolves,
// else a fresh default rendering. It never fails; a span-backed repr that was
// never despanned falls back to the default.
func (f *Formatted[T]) DisplayRepr() string {
	if f.repr != nil {
		if s, ok := f.repr.Raw().Str(); ok {
			return s
		}
	}
	d := f.DefaultRepr()
	s, _ := d.Raw().Str()
	return s
}

func (f *Formatted[T]) Span() (repr.Span, bool) {
	if f.repr == nil {
		return repr.Span{}, false
	}
	return f.repr.Span()
}

// Despan resolves every span in the decor and repr against input, severing
// the dependency on the source buffer.
func (f *Formatted[T]) Despan(input []byte) {
	f.decor.Despan(input)
	if f.repr != nil {
		f.repr.Despan(input)
	}
}

func (f *Formatted[T]) Decor() *repr.Decor {
	return &f.decor
}

// Fmt materializes the default repr as the explicit one, discarding any
// custom formatting the value carried.
func (f *Formatted[T]) Fmt() {
	r := f.DefaultRepr()
	f.repr = &r
}

// WithReprUnchecked sets the explicit repr. The caller guarantees r is valid
// TOML for the wrapped value.
func (f *Formatted[T]) WithReprUnchecked(r repr.Repr) *Formatted[T] {
	f.repr = &r
	return f
}

// Decorated sets explicit prefix and suffix decor.
func (f *Formatted[T]) Decorated(prefix, suffix string) *Formatted[T] {
	f.decor = repr.NewDecor(prefix, suffix)
	return f
}

// Encode writes decor prefix, repr (explicit or default), then decor suffix.
// Spans resolve against input; defaults supplies the decor fallback strings.
func (f *Formatted[T]) Encode(w io.Writer, input []byte, defPrefix, defSuffix string) error {
	if err := f.decor.PrefixEncode(w, input, defPrefix); err != nil {
		return err
	}
	if f.repr != nil {
		if err := f.repr.Encode(w, input); err != nil {
			return err
		}
	} else {
		d := f.DefaultRepr()
		if err := d.Encode(w, input); err != nil {
			return err
		}
	}
	return f.decor.SuffixEncode(w, input, defSuffix)
}

func (f *Formatted[T]) String() string {
	b := &strings.Builder{}
	if err := f.Encode(b, nil, "", ""); err != nil {
		return "<err: " + err.Error() + ">"
	}
	return b.String()
}
