package key

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	tomlkeep "github.com/tomlkeep/go-tomlkeep"
	"github.com/tomlkeep/go-tomlkeep/repr"
)

// Parse parses exactly one key token (bare, basic-quoted or literal-quoted)
// with its surrounding whitespace captured as decor. The result is despanned
// against s, so it does not retain the input. Exactly one grammar production
// is attempted: invalid text fails, it is not re-quoted.
func Parse(s string) (Key, error) {
	lx := newLexer(s)
	k, err := lx.key()
	if err != nil {
		return Key{}, err
	}
	if lx.i != len(lx.d) {
		return Key{}, tomlkeep.UnexpectedErr(strconv.Quote(string(lx.d[lx.i:lx.i+1])), lx.pos())
	}
	k.Despan(lx.d)
	return k, nil
}

// ParsePath parses a dotted sequence of key tokens, each with its own decor.
// All keys are despanned against s before return; on any failure no keys are
// returned.
func ParsePath(s string) ([]Key, error) {
	lx := newLexer(s)
	if len(lx.d) == 0 {
		return nil, tomlkeep.NewError(tomlkeep.ErrEmptyPath, lx.pos())
	}
	var res []Key
	for {
		k, err := lx.key()
		if err != nil {
			return nil, err
		}
		res = append(res, k)
		if lx.i == len(lx.d) {
			break
		}
		if lx.d[lx.i] != '.' {
			return nil, tomlkeep.UnexpectedErr(strconv.Quote(string(lx.d[lx.i:lx.i+1])), lx.pos())
		}
		lx.i++
	}
	for i := range res {
		res[i].Despan(lx.d)
	}
	return res, nil
}

type lexer struct {
	d  []byte
	i  int
	pd *tomlkeep.PosDoc
}

func newLexer(s string) *lexer {
	d := []byte(s)
	return &lexer{d: d, pd: tomlkeep.NewPosDoc(d)}
}

func (lx *lexer) pos() *tomlkeep.Pos {
	return lx.pd.Pos(lx.i)
}

func (lx *lexer) ws() repr.Span {
	start := lx.i
	for lx.i < len(lx.d) {
		switch lx.d[lx.i] {
		case ' ', '\t':
			lx.i++
		default:
			return repr.NewSpan(start, lx.i)
		}
	}
	return repr.NewSpan(start, lx.i)
}

// trailer consumes suffix trivia: whitespace plus any `# ...` comment run,
// which extends to the next newline or end of input.
func (lx *lexer) trailer() repr.Span {
	start := lx.i
	for lx.i < len(lx.d) {
		switch lx.d[lx.i] {
		case ' ', '\t':
			lx.i++
		case '#':
			for lx.i < len(lx.d) && lx.d[lx.i] != '\n' {
				lx.i++
			}
		default:
			return repr.NewSpan(start, lx.i)
		}
	}
	return repr.NewSpan(start, lx.i)
}

func (lx *lexer) key() (Key, error) {
	prefix := lx.ws()
	if lx.i >= len(lx.d) {
		return Key{}, tomlkeep.ExpectedErr("key", lx.pos())
	}
	start := lx.i
	var (
		sem string
		err error
	)
	switch lx.d[lx.i] {
	case '"':
		sem, err = lx.basic()
	case '\'':
		sem, err = lx.literal()
	default:
		sem, err = lx.bare()
	}
	if err != nil {
		return Key{}, err
	}
	tok := repr.NewSpan(start, lx.i)
	suffix := lx.trailer()

	var d repr.Decor
	d.SetPrefix(repr.FromSpan(prefix))
	d.SetSuffix(repr.FromSpan(suffix))
	return New(sem).
		WithReprUnchecked(repr.NewUnchecked(repr.FromSpan(tok))).
		WithDecor(d), nil
}

func (lx *lexer) bare() (string, error) {
	start := lx.i
	for lx.i < len(lx.d) && bareChar(lx.d[lx.i]) {
		lx.i++
	}
	if lx.i == start {
		return "", tomlkeep.ExpectedErr("key", lx.pos())
	}
	return string(lx.d[start:lx.i]), nil
}

func (lx *lexer) literal() (string, error) {
	open := lx.pos()
	lx.i++
	start := lx.i
	for lx.i < len(lx.d) {
		r, sz := utf8.DecodeRune(lx.d[lx.i:])
		if r == utf8.RuneError && sz == 1 {
			return "", tomlkeep.NewError(tomlkeep.ErrBadUTF8, lx.pos())
		}
		switch {
		case r == '\'':
			sem := string(lx.d[start:lx.i])
			lx.i++
			return sem, nil
		case r == '\n':
			return "", tomlkeep.NewError(tomlkeep.ErrUnterminated, open)
		case r != '\t' && unicode.IsControl(r):
			return "", tomlkeep.NewError(tomlkeep.ErrControl, lx.pos())
		}
		lx.i += sz
	}
	return "", tomlkeep.NewError(tomlkeep.ErrUnterminated, open)
}

func (lx *lexer) basic() (string, error) {
	open := lx.pos()
	lx.i++
	b := &strings.Builder{}
	for lx.i < len(lx.d) {
		r, sz := utf8.DecodeRune(lx.d[lx.i:])
		if r == utf8.RuneError && sz == 1 {
			return "", tomlkeep.NewError(tomlkeep.ErrBadUTF8, lx.pos())
		}
		switch {
		case r == '"':
			lx.i++
			return b.String(), nil
		case r == '\\':
			lx.i++
			if err := lx.escape(b); err != nil {
				return "", err
			}
		case r == '\n':
			return "", tomlkeep.NewError(tomlkeep.ErrUnterminated, open)
		case r != '\t' && unicode.IsControl(r):
			return "", tomlkeep.NewError(tomlkeep.ErrControl, lx.pos())
		default:
			b.WriteRune(r)
			lx.i += sz
		}
	}
	return "", tomlkeep.NewError(tomlkeep.ErrUnterminated, open)
}

func (lx *lexer) escape(b *strings.Builder) error {
	if lx.i >= len(lx.d) {
		return tomlkeep.NewError(tomlkeep.ErrUnterminated, lx.pos())
	}
	c := lx.d[lx.i]
	lx.i++
	switch c {
	case 'b':
		b.WriteByte('\b')
	case 't':
		b.WriteByte('\t')
	case 'n':
		b.WriteByte('\n')
	case 'f':
		b.WriteByte('\f')
	case 'r':
		b.WriteByte('\r')
	case '"':
		b.WriteByte('"')
	case '\\':
		b.WriteByte('\\')
	case 'u':
		return lx.unicodeEscape(b, 4)
	case 'U':
		return lx.unicodeEscape(b, 8)
	default:
		return tomlkeep.NewError(tomlkeep.ErrBadEscape, lx.pd.Pos(lx.i-1))
	}
	return nil
}

func (lx *lexer) unicodeEscape(b *strings.Builder, n int) error {
	if lx.i+n > len(lx.d) {
		return tomlkeep.NewError(tomlkeep.ErrUnterminated, lx.pos())
	}
	v, err := strconv.ParseUint(string(lx.d[lx.i:lx.i+n]), 16, 32)
	if err != nil {
		return tomlkeep.NewError(tomlkeep.ErrBadUnicode, lx.pos())
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return tomlkeep.NewError(tomlkeep.ErrBadUnicode, lx.pos())
	}
	b.WriteRune(r)
	lx.i += n
	return nil
}
