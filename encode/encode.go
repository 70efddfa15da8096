package encode

import (
	"io"
	"strings"

	"github.com/tomlkeep/go-tomlkeep/key"
	"github.com/tomlkeep/go-tomlkeep/value"
)

// Default decor strings per syntactic context. Key uses the key pair as its
// built-in fallback; the value pair is the key-value-position convention for
// callers to pass via WithDefaults (Value itself falls back to empty strings,
// matching top-level display).
const (
	DefaultKeyPrefix   = ""
	DefaultKeySuffix   = " "
	DefaultValuePrefix = " "
	DefaultValueSuffix = ""
)

// Key writes one key in key-value position: decor prefix, literal key token,
// decor suffix. Unset decor sides use ("", " ") unless overridden.
func Key(w io.Writer, k *key.Key, opts ...EncodeOption) error {
	es := newEncState(DefaultKeyPrefix, DefaultKeySuffix, opts)
	return encodeKey(w, k, es)
}

// KeyPath writes a dotted key path, joining the segments with ".". Unset
// decor sides use ("", "").
func KeyPath(w io.Writer, ks []key.Key, opts ...EncodeOption) error {
	es := newEncState("", "", opts)
	for i := range ks {
		if i > 0 {
			if err := writeColored(w, es, KeyClass, SepColor, "."); err != nil {
				return err
			}
		}
		if err := encodeKey(w, &ks[i], es); err != nil {
			return err
		}
	}
	return nil
}

// Value writes one formatted scalar: decor prefix, repr (explicit or
// default), decor suffix. Unset decor sides use ("", "") unless overridden,
// matching top-level display.
func Value[T value.Scalar](w io.Writer, f *value.Formatted[T], opts ...EncodeOption) error {
	es := newEncState("", "", opts)
	if es.colors == nil {
		return f.Encode(w, es.input, es.defPrefix, es.defSuffix)
	}
	cls := classOf(any(f.Value()))
	pre, err := renderTo(func(w io.Writer) error {
		return f.Decor().PrefixEncode(w, es.input, es.defPrefix)
	})
	if err != nil {
		return err
	}
	suf, err := renderTo(func(w io.Writer) error {
		return f.Decor().SuffixEncode(w, es.input, es.defSuffix)
	})
	if err != nil {
		return err
	}
	tok, err := renderTo(func(w io.Writer) error {
		if r := f.AsRepr(); r != nil {
			return r.Encode(w, es.input)
		}
		d := f.DefaultRepr()
		return d.Encode(w, es.input)
	})
	if err != nil {
		return err
	}
	if err := writeColored(w, es, cls, DecorColor, pre); err != nil {
		return err
	}
	if err := writeColored(w, es, cls, ValueColor, tok); err != nil {
		return err
	}
	return writeColored(w, es, cls, DecorColor, suf)
}

func encodeKey(w io.Writer, k *key.Key, es *EncState) error {
	if es.colors == nil {
		return k.Encode(w, es.input, es.defPrefix, es.defSuffix)
	}
	pre, err := renderTo(func(w io.Writer) error {
		return k.Decor().PrefixEncode(w, es.input, es.defPrefix)
	})
	if err != nil {
		return err
	}
	suf, err := renderTo(func(w io.Writer) error {
		return k.Decor().SuffixEncode(w, es.input, es.defSuffix)
	})
	if err != nil {
		return err
	}
	tok, err := renderTo(func(w io.Writer) error {
		if r := k.AsRepr(); r != nil {
			return r.Encode(w, es.input)
		}
		d := k.DefaultRepr()
		return d.Encode(w, es.input)
	})
	if err != nil {
		return err
	}
	if err := writeColored(w, es, KeyClass, DecorColor, pre); err != nil {
		return err
	}
	if err := writeColored(w, es, KeyClass, ValueColor, tok); err != nil {
		return err
	}
	return writeColored(w, es, KeyClass, DecorColor, suf)
}

func classOf(v any) Class {
	switch v.(type) {
	case string:
		return StringClass
	case int64, float64:
		return NumberClass
	case bool:
		return BoolClass
	case value.Datetime:
		return DatetimeClass
	default:
		return KeyClass
	}
}

func writeColored(w io.Writer, es *EncState, cls Class, attr ColorAttr, s string) error {
	if es.colors != nil {
		s = es.colors.Color(cls, attr, s)
	}
	return writeString(w, s)
}

func renderTo(f func(io.Writer) error) (string, error) {
	b := &strings.Builder{}
	if err := f(b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
