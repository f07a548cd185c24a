package cgkit

import "errors"

var (
	// ErrIndexOutOfRange is returned when a control-point or segment index
	// falls outside the sequence.
	ErrIndexOutOfRange = errors.New("cgkit: index out of range")

	// ErrInvalidParameter is returned for a non-positive sample count.
	ErrInvalidParameter = errors.New("cgkit: invalid parameter")
)
