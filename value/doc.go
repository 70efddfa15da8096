// Package value pairs semantic TOML scalar values with their textual
// representation.
//
// # Overview
//
// Formatted wraps one scalar value together with an optional explicit Repr
// (the exact bytes it had in the source, or a caller-chosen encoding) and its
// surrounding Decor. A Formatted with no explicit repr renders through the
// scalar's default encoding, computed on demand from the current value.
//
// The set of wrappable types is closed: Scalar is a type-set constraint
// enumerating exactly string, int64, float64, bool and Datetime. Code outside
// this package cannot extend the set, which keeps default rendering
// centralized.
//
// # Usage
//
//	v := value.New(int64(42))
//	v.Value()        // 42
//	v.DisplayRepr()  // "42"
//	v.SetValue(7)    // keeps any explicit repr, see Fmt
//	v.Fmt()          // re-sync repr with the current value
//
// # Related Packages
//
//   - github.com/tomlkeep/go-tomlkeep/repr - Repr and Decor
//   - github.com/tomlkeep/go-tomlkeep/key - the key-side analog
package value
