package encode

// EncState holds the configuration for one encode call.
type EncState struct {
	input     []byte
	colors    *Colors
	defPrefix string
	defSuffix string

	hasDefaults bool
}

type EncodeOption func(*EncState)

// WithInput supplies the original source buffer so span-backed raw strings
// resolve without having been despanned.
func WithInput(input []byte) EncodeOption {
	return func(es *EncState) { es.input = input }
}

// WithColors colorizes output.
func WithColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// WithDefaults overrides the fallback decor strings used when an element has
// no explicit decor on a side. Key contexts default to ("", " "), value and
// key-path contexts to ("", "").
func WithDefaults(prefix, suffix string) EncodeOption {
	return func(es *EncState) {
		es.defPrefix = prefix
		es.defSuffix = suffix
		es.hasDefaults = true
	}
}

func newEncState(defPrefix, defSuffix string, opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if !es.hasDefaults {
		es.defPrefix = defPrefix
		es.defSuffix = defSuffix
	}
	return es
}
