// Package key models TOML keys without losing how they were written.
//
// # Overview
//
// A Key carries three things: the semantic key name (interned, the sole basis
// for equality and ordering), an optional Repr holding the literal form the
// key had in the source (bare, basic-quoted or literal-quoted), and the Decor
// around it. Two keys spelled `foo` and `"foo"` are equal; only their
// formatting differs.
//
// # Usage
//
//	k := key.New("server")
//	k.DisplayRepr()          // server (bare, computed on demand)
//
//	k, err := key.Parse(` 'literal key' `)
//	// k.Get() == "literal key", decor preserved, repr == 'literal key'
//
//	ks, err := key.ParsePath(`servers . "alpha".port`)
//	// three keys, each with its own decor
//
//	k.Fmt() // normalize: materialize the default repr, drop decor
//
// # Related Packages
//
//   - github.com/tomlkeep/go-tomlkeep/repr - Repr and Decor
//   - github.com/tomlkeep/go-tomlkeep/encode - rendering keys and paths
package key
