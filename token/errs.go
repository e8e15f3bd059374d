package token

import (
	"errors"
	"fmt"
)

var (
	ErrTabIndent    = errors.New("tab in indentation")
	ErrUnterminated = errors.New("unterminated quoted string")
	ErrBadEscape    = errors.New("bad escape sequence")
	ErrBadUnicode   = errors.New("bad unicode escape")
)

// ScanErr is a positioned scan or parse error.
type ScanErr struct {
	Err error
	Pos Pos
}

func NewScanErr(err error, p Pos) *ScanErr {
	return &ScanErr{Err: err, Pos: p}
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos)
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func ExpectedErr(what string, p Pos) error {
	return NewScanErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p Pos) error {
	return NewScanErr(fmt.Errorf("unexpected %s", what), p)
}
