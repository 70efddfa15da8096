// Package repr separates the semantic content of a TOML element from its
// textual representation.
//
// # Overview
//
// A parsed fragment is represented twice: once as its semantic value and once
// as the exact bytes it occupied in the source. The textual side is built from
// three types:
//
//   - RawString: either an owned string, or a byte-offset Span into the
//     original source buffer that has not been resolved yet.
//   - Repr: the literal encoding of exactly one value or key, wrapping a
//     single RawString.
//   - Decor: the whitespace and comment trivia surrounding an element, split
//     into an optional prefix and an optional suffix.
//
// Span-backed raw strings are produced by parsing and depend on the source
// buffer. Despan resolves them into owned strings exactly once, after which
// the buffer may be freed or mutated. An unset Decor side does not mean the
// empty string: it means "use whatever default the encoding context supplies".
//
// # Usage
//
//	r := repr.NewUnchecked(repr.New(`"hello"`))
//	var buf bytes.Buffer
//	r.Encode(&buf, nil)
//
//	d := repr.NewDecor("# leading\n", " ")
//	d.Clear() // back to context defaults
//
// # Related Packages
//
//   - github.com/tomlkeep/go-tomlkeep/value - Formatted scalar values
//   - github.com/tomlkeep/go-tomlkeep/key - keys built on Repr and Decor
package repr
