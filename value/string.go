package value

import (
	"strings"
	"unicode"

	"github.com/tomlkeep/go-tomlkeep/repr"
)

// StringStyle selects a TOML string syntax for ToStringRepr.
type StringStyle int

const (
	BasicString   StringStyle = iota // "..."
	LiteralString                    // '...'
	MlBasicString                    // """..."""
	MlLiteralString                  // '''...'''
)

func (s StringStyle) String() string {
	switch s {
	case BasicString:
		return "basic"
	case LiteralString:
		return "literal"
	case MlBasicString:
		return "ml-basic"
	case MlLiteralString:
		return "ml-literal"
	default:
		return "<unknown style>"
	}
}

func (s StringStyle) multiline() bool {
	return s == MlBasicString || s == MlLiteralString
}

type strOpts struct {
	style    *StringStyle
	noML     bool
	hasStyle bool
}

type StringOption func(*strOpts)

// StyleHint requests a specific string syntax. The hint is downgraded to a
// syntax that can actually carry the text: a literal style falls back to the
// basic style of the same line-ness, and a one-line style falls back to its
// multiline form when the text contains newlines.
func StyleHint(s StringStyle) StringOption {
	return func(o *strOpts) {
		o.style = &s
		o.hasStyle = true
	}
}

// SingleLine forbids multiline syntaxes; newlines are escaped instead.
func SingleLine() StringOption {
	return func(o *strOpts) { o.noML = true }
}

// ToStringRepr renders text as a quoted TOML string literal. With no options
// it produces a one-line basic string, which can carry any text.
func ToStringRepr(text string, opts ...StringOption) repr.Repr {
	o := &strOpts{}
	for _, opt := range opts {
		opt(o)
	}
	style := BasicString
	if o.hasStyle {
		style = *o.style
	}
	if o.noML || !strings.Contains(text, "\n") {
		if style.multiline() && o.noML {
			style = downLine(style)
		}
	} else if !style.multiline() {
		style = upLine(style)
	}
	if style == LiteralString && !literalOK(text) {
		style = BasicString
	}
	if style == MlLiteralString && !mlLiteralOK(text) {
		style = MlBasicString
	}
	return repr.NewUnchecked(repr.New(quoteStyle(text, style)))
}

func downLine(s StringStyle) StringStyle {
	switch s {
	case MlBasicString:
		return BasicString
	case MlLiteralString:
		return LiteralString
	default:
		return s
	}
}

func upLine(s StringStyle) StringStyle {
	switch s {
	case BasicString:
		return MlBasicString
	case LiteralString:
		return MlLiteralString
	default:
		return s
	}
}

// literalOK reports whether text can sit between single quotes on one line.
func literalOK(text string) bool {
	for _, r := range text {
		if r == '\'' {
			return false
		}
		if r != '\t' && unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func mlLiteralOK(text string) bool {
	if strings.Contains(text, "'''") {
		return false
	}
	if strings.HasPrefix(text, "'") || strings.HasSuffix(text, "'") {
		return false
	}
	for _, r := range text {
		if r != '\t' && r != '\n' && unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func quoteStyle(text string, style StringStyle) string {
	switch style {
	case LiteralString:
		return "'" + text + "'"
	case MlLiteralString:
		return "'''\n" + text + "'''"
	case MlBasicString:
		return `"""` + "\n" + escapeBasic(text, true) + `"""`
	default:
		return `"` + escapeBasic(text, false) + `"`
	}
}

func escapeBasic(text string, multiline bool) string {
	b := &strings.Builder{}
	b.Grow(len(text) + 2)
	for _, r := range text {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\t':
			b.WriteByte('\t')
		case '\n':
			if multiline {
				b.WriteByte('\n')
			} else {
				b.WriteString(`\n`)
			}
		case '\r':
			b.WriteString(`\r`)
		default:
			if unicode.IsControl(r) {
				writeUnicodeEscape(b, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func writeUnicodeEscape(b *strings.Builder, r rune) {
	const hex = "0123456789ABCDEF"
	if r > 0xFFFF {
		b.WriteString(`\U`)
		for sh := 28; sh >= 0; sh -= 4 {
			b.WriteByte(hex[(r>>sh)&0xF])
		}
		return
	}
	b.WriteString(`\u`)
	for sh := 12; sh >= 0; sh -= 4 {
		b.WriteByte(hex[(r>>sh)&0xF])
	}
}
