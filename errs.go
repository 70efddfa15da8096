package tomlkeep

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrControl      = errors.New("control character")
	ErrEmptyPath    = errors.New("empty key path")
)

// Error is the single error kind surfaced by the parsing entry points. It
// wraps a sentinel error with the offset at which parsing failed.
type Error struct {
	Err error
	Pos Pos
}

func NewError(e error, p *Pos) *Error {
	return &Error{Err: e, Pos: *p}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewError(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewError(fmt.Errorf("unexpected %s", what), p)
}
