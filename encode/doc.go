// Package encode renders keys, key paths and formatted values to text.
//
// # Usage
//
//	ks, _ := key.ParsePath(`servers."alpha".port`)
//	var buf bytes.Buffer
//	encode.KeyPath(&buf, ks)
//
//	// with the original source buffer for span resolution
//	encode.Key(&buf, &k, encode.WithInput(input))
//
//	// colorized output
//	encode.Key(&buf, &k, encode.WithColors(encode.NewColors()))
//
// Each element emits its decor prefix, its repr (explicit if present, else
// the computed default) and its decor suffix. Unset decor sides fall back to
// the defaults configured on the encoder.
//
// # Related Packages
//
//   - github.com/tomlkeep/go-tomlkeep/key - keys and key paths
//   - github.com/tomlkeep/go-tomlkeep/value - formatted values
package encode
