package mrst

import "errors"

var (
	ErrDuplicateCase        = errors.New("duplicate case")
	ErrNoProductiveStrategy = errors.New("no productive strategy")
	ErrLengthMismatch       = errors.New("keys and values differ in length")
	ErrBadWindow            = errors.New("bad bit window")
	ErrUnknownStrategy      = errors.New("unknown strategy")
	ErrUnknownPolicy        = errors.New("unknown rejection policy")
)
