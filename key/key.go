package key

import (
	"io"
	"strings"

	"github.com/tomlkeep/go-tomlkeep/intern"
	"github.com/tomlkeep/go-tomlkeep/repr"
	"github.com/tomlkeep/go-tomlkeep/value"
)

// Key is a TOML key: an interned semantic name, an optional literal repr, and
// the surrounding decor. Identity is the semantic name alone; repr and decor
// never participate in comparison.
type Key struct {
	key   intern.String
	repr  *repr.Repr
	decor repr.Decor
}

// New returns a key with default formatting: no explicit repr, unset decor.
func New(k string) Key {
	return Key{key: intern.Make(k)}
}

// WithDecor returns the key with its decor replaced.
func (k Key) WithDecor(d repr.Decor) Key {
	k.decor = d
	return k
}

// Decorated returns the key with explicit prefix and suffix decor.
func (k Key) Decorated(prefix, suffix string) Key {
	k.decor = repr.NewDecor(prefix, suffix)
	return k
}

// WithReprUnchecked returns the key with an explicit repr attached. The
// caller guarantees r is a valid key token for the semantic name.
func (k Key) WithReprUnchecked(r repr.Repr) Key {
	k.repr = &r
	return k
}

// Get returns the semantic key name.
func (k *Key) Get() string {
	return k.key.Str()
}

// Interned returns the deduplicated form of the name.
func (k *Key) Interned() intern.String {
	return k.key
}

// AsRepr returns the explicit repr, or nil when the key renders by default.
func (k *Key) AsRepr() *repr.Repr {
	return k.repr
}

// DefaultRepr computes the default literal form of the name: bare when the
// name is nonempty and every byte is a bare-key character, else a one-line
// basic-quoted token. The empty name renders as "".
func (k *Key) DefaultRepr() repr.Repr {
	return defaultRepr(k.Get())
}

// DisplayRepr returns display-ready text: the explicit repr when it
// resolves, else the computed default.
func (k *Key) DisplayRepr() string {
	if k.repr != nil {
		if s, ok := k.repr.Raw().Str(); ok {
			return s
		}
	}
	d := k.DefaultRepr()
	s, _ := d.Raw().Str()
	return s
}

func (k *Key) Decor() *repr.Decor {
	return &k.decor
}

func (k *Key) Span() (repr.Span, bool) {
	if k.repr == nil {
		return repr.Span{}, false
	}
	return k.repr.Span()
}

// Despan resolves decor and repr spans against input.
func (k *Key) Despan(input []byte) {
	k.decor.Despan(input)
	if k.repr != nil {
		k.repr.Despan(input)
	}
}

// Fmt materializes the default repr and clears the decor, normalizing the
// key's formatting.
func (k *Key) Fmt() {
	r := k.DefaultRepr()
	k.repr = &r
	k.decor.Clear()
}

// Equal compares semantic names only.
func (k *Key) Equal(o *Key) bool {
	return k.Get() == o.Get()
}

// Compare orders keys byte-wise on the semantic name, case sensitively.
func (k *Key) Compare(o *Key) int {
	return strings.Compare(k.Get(), o.Get())
}

// AsMut returns a mutable view that cannot replace the semantic name.
func (k *Key) AsMut() KeyMut {
	return KeyMut{k: k}
}

// Encode writes decor prefix, repr (explicit or default), then decor suffix,
// resolving spans against input.
func (k *Key) Encode(w io.Writer, input []byte, defPrefix, defSuffix string) error {
	if err := k.decor.PrefixEncode(w, input, defPrefix); err != nil {
		return err
	}
	if k.repr != nil {
		if err := k.repr.Encode(w, input); err != nil {
			return err
		}
	} else {
		d := k.DefaultRepr()
		if err := d.Encode(w, input); err != nil {
			return err
		}
	}
	return k.decor.SuffixEncode(w, input, defSuffix)
}

func (k Key) String() string {
	b := &strings.Builder{}
	if err := k.Encode(b, nil, "", ""); err != nil {
		return "<err: " + err.Error() + ">"
	}
	return b.String()
}

func defaultRepr(s string) repr.Repr {
	if s != "" && allBare(s) {
		return repr.NewUnchecked(repr.New(s))
	}
	return value.ToStringRepr(s, value.StyleHint(value.BasicString), value.SingleLine())
}

func allBare(s string) bool {
	for i := 0; i < len(s); i++ {
		if !bareChar(s[i]) {
			return false
		}
	}
	return true
}

func bareChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	default:
		return false
	}
}

// KeyMut is a borrowing view over a Key exposing its read and format
// operations. Renaming goes through explicit reconstruction, never through a
// KeyMut.
type KeyMut struct {
	k *Key
}

func (m KeyMut) Get() string {
	return m.k.Get()
}

func (m KeyMut) AsRepr() *repr.Repr {
	return m.k.AsRepr()
}

func (m KeyMut) DefaultRepr() repr.Repr {
	return m.k.DefaultRepr()
}

func (m KeyMut) DisplayRepr() string {
	return m.k.DisplayRepr()
}

func (m KeyMut) Decor() *repr.Decor {
	return m.k.Decor()
}

func (m KeyMut) Fmt() {
	m.k.Fmt()
}

func (m KeyMut) String() string {
	return m.k.String()
}
