// Package tomlkeep provides the shared error and position types for the
// tomlkeep lossless TOML editing primitives.
//
// # Overview
//
// The tomlkeep module represents TOML fragments with two parallel views: the
// semantic value (a key name, an integer, a string) and the exact source bytes
// that produced it. Unmodified fragments re-encode byte for byte; modified
// fragments re-encode with computed defaults.
//
// This package holds what every layer shares: the Error type produced by the
// parsing entry points, and the Pos/PosDoc machinery that maps byte offsets
// into line/column coordinates of the parsed text.
//
// # Related Packages
//
//   - github.com/tomlkeep/go-tomlkeep/repr - raw strings, spans, reprs, decor
//   - github.com/tomlkeep/go-tomlkeep/value - formatted scalar values
//   - github.com/tomlkeep/go-tomlkeep/key - keys and key-path parsing
//   - github.com/tomlkeep/go-tomlkeep/encode - encoding walkers
package tomlkeep
