package statecoll

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is the cause of errors returned when a caller passes
	// an out-of-range priority or capacity.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFull is the cause of errors returned when pushing onto a bounded
	// Stack or Queue that is at capacity.
	ErrFull = errors.New("container full")
)
