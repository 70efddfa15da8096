// Package intern provides deduplicated string handles for key identity.
//
// Interning goes through the runtime's canonical map (the unique package), so
// equal key names share one handle and handle comparison is pointer-cheap.
// There is no package-level state to set up or tear down.
package intern

import "unique"

// String is an interned string value. The zero value behaves as the empty
// string.
type String struct {
	h unique.Handle[string]
}

func Make(s string) String {
	return String{h: unique.Make(s)}
}

func (s String) Str() string {
	var zero unique.Handle[string]
	if s.h == zero {
		return ""
	}
	return s.h.Value()
}

// Handle exposes the underlying unique handle for dedup-aware comparison.
func (s String) Handle() unique.Handle[string] {
	return s.h
}

func (s String) MarshalText() ([]byte, error) {
	return []byte(s.Str()), nil
}

func (s *String) UnmarshalText(text []byte) error {
	s.h = unique.Make(string(text))
	return nil
}
