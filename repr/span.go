package repr

import "fmt"

// Span is a half-open [Start, End) byte range into a specific source buffer.
// It is only meaningful while that buffer and its offset interpretation remain
// unchanged.
type Span struct {
	Start, End int
}

func NewSpan(start, end int) Span {
	if end < start {
		panic(fmt.Sprintf("span %d..%d reversed", start, end))
	}
	return Span{Start: start, End: end}
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
