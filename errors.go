package max7219

import (
	"errors"

	"github.com/flavioheleno/max7219/segment"
)

var (
	// ErrInvalidArgument is returned for malformed input: a segment slice
	// that is not 8 long, a symbol outside the Code B font or an unknown
	// register.
	ErrInvalidArgument = segment.ErrInvalidArgument
	// ErrOutOfRange is returned when a chip index, digit number, intensity
	// or scan limit is outside its documented bounds.
	ErrOutOfRange = errors.New("out of range")
	// ErrHalted is returned by writes issued after Halt.
	ErrHalted = errors.New("max7219: halted")
)

// TransportError wraps a failed bus write. Nothing is retried; the chip state
// after a failed write is unknown and the caller has to reissue it.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "max7219: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
