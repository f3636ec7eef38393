package bytebuffer

import "github.com/pkg/errors"

// Error kinds returned by ByteBuffer operations. Returned errors wrap one of
// these, so match them with errors.Is or errors.Cause.
var (
	// ErrOutOfBounds is returned when a strict buffer is accessed beyond its end,
	// or when a position would become negative
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidArgument is returned for malformed arguments such as a bit width
	// outside [1, 32], an unknown string type or an invalid length prefix size
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValueRange is returned when a value does not fit the target width,
	// signedness or floating point precision
	ErrValueRange = errors.New("value out of range")

	// ErrUnsupported is returned for operations the current mode does not allow,
	// like removing bytes from a strict buffer
	ErrUnsupported = errors.New("unsupported operation")

	// ErrClosed is returned by every operation on a buffer after Close
	ErrClosed = errors.New("buffer is closed")
)
