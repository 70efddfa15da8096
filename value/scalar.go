package value

import (
	"strconv"

	"github.com/tomlkeep/go-tomlkeep/repr"
)

// Scalar is the closed set of semantic types that may appear inside a
// Formatted value. The union keeps the capability sealed: no type outside
// this list can be given a default TOML rendering.
type Scalar interface {
	string | int64 | float64 | bool | Datetime
}

// DefaultRepr renders v in its default TOML syntax. The result is always
// explicit (never span-backed).
func DefaultRepr[T Scalar](v T) repr.Repr {
	switch v := any(v).(type) {
	case string:
		return ToStringRepr(v)
	case int64:
		return repr.NewUnchecked(repr.New(strconv.FormatInt(v, 10)))
	case float64:
		return repr.NewUnchecked(repr.New(floatText(v)))
	case bool:
		return repr.NewUnchecked(repr.New(strconv.FormatBool(v)))
	case Datetime:
		return repr.NewUnchecked(repr.New(v.String()))
	}
	panic("scalar")
}
