package bytebuffer

import (
	"strings"

	"github.com/pkg/errors"
)

// Endian selects the byte order of multi-byte values and the bit order of
// bitfields
type Endian int

// Values for Endian
const (
	// DefaultEndian defers to the buffer's configured endianness
	DefaultEndian Endian = iota
	LittleEndian
	BigEndian
)

func (e Endian) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "default"
	}
}

// ParseEndian parses "little", "le", "big" or "be", ignoring case
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le":
		return LittleEndian, nil
	case "big", "be":
		return BigEndian, nil
	}
	return DefaultEndian, errors.Wrapf(ErrInvalidArgument, "invalid endianness %q", s)
}

// Options holds the construction time configuration of a ByteBuffer
type Options struct {
	ByteOffset       int    // initial byte position
	BitOffset        int    // initial bit position, 0-7
	Endian           Endian // default endianness, little unless set
	Strict           bool   // disallow growth on out of range access
	ExtendBufferSize int    // growth chunk, 0 grows by the exact deficit
	EnforceWideInt   bool   // Read64 always returns a *big.Int
}

// Option mutates Options
type Option func(*Options)

// WithOffset sets the initial byte and bit position
func WithOffset(byteOffset, bitOffset int) Option {
	return func(o *Options) {
		o.ByteOffset, o.BitOffset = byteOffset, bitOffset
	}
}

// WithEndian sets the default endianness
func WithEndian(e Endian) Option {
	return func(o *Options) { o.Endian = e }
}

// WithStrict enables or disables strict mode
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// WithExtendBufferSize sets the fixed chunk the buffer grows by in non-strict mode
func WithExtendBufferSize(n int) Option {
	return func(o *Options) { o.ExtendBufferSize = n }
}

// WithEnforceWideInt makes 64 bit dynamic reads always return a *big.Int
func WithEnforceWideInt(enforce bool) Option {
	return func(o *Options) { o.EnforceWideInt = enforce }
}

func (o *Options) validate(size int) error {
	if o.BitOffset < 0 || o.BitOffset > 7 {
		return errors.Wrapf(ErrInvalidArgument, "bit offset %d not in [0, 7]", o.BitOffset)
	}
	if o.ByteOffset < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative byte offset %d", o.ByteOffset)
	}
	if o.Strict && o.ByteOffset+(o.BitOffset+7)/8 > size {
		return errors.Wrapf(ErrOutOfBounds, "offset %d:%d beyond buffer of %d bytes", o.ByteOffset, o.BitOffset, size)
	}
	if o.ExtendBufferSize < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative extend buffer size %d", o.ExtendBufferSize)
	}
	switch o.Endian {
	case DefaultEndian:
		o.Endian = LittleEndian
	case LittleEndian, BigEndian:
	default:
		return errors.Wrapf(ErrInvalidArgument, "invalid endianness %d", int(o.Endian))
	}
	return nil
}
