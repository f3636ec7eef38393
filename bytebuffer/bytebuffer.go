package bytebuffer

import (
	"io"

	"github.com/pkg/errors"
)

// ByteBuffer is a cursor over a growable byte slice that supports reading and
// writing anywhere, at byte or bit granularity
//
// A ByteBuffer is not safe for concurrent use.
type ByteBuffer struct {
	buffer []byte
	pos    int // byte offset of the next access
	bit    int // 0-7, bits already consumed in buffer[pos]
	endian Endian
	strict bool
	extend int
	wide   bool
	closed bool
}

func newByteBuffer(data []byte, o Options, opts []Option) (*ByteBuffer, error) {
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.validate(len(data)); err != nil {
		return nil, err
	}

	b := &ByteBuffer{
		buffer: data,
		endian: o.Endian,
		strict: o.Strict,
		extend: o.ExtendBufferSize,
		wide:   o.EnforceWideInt,
	}

	if err := b.ensureEnd(o.ByteOffset + (o.BitOffset+7)/8); err != nil {
		return nil, err
	}
	b.pos, b.bit = o.ByteOffset, o.BitOffset

	return b, nil
}

// NewReader creates a strict ByteBuffer over data
//
// data is wrapped, not copied. Any operation that grows or splices the buffer
// may reallocate it, after which data no longer reflects the buffer contents,
// use Bytes to get at the current storage.
func NewReader(data []byte, opts ...Option) (*ByteBuffer, error) {
	return newByteBuffer(data, Options{Strict: true}, opts)
}

// NewWriter creates a non-strict ByteBuffer over data, allocating a single
// zero byte when data is nil
//
// The aliasing caveats of NewReader apply.
func NewWriter(data []byte, opts ...Option) (*ByteBuffer, error) {
	if data == nil {
		data = make([]byte, 1)
	}
	return newByteBuffer(data, Options{Strict: false}, opts)
}

// NewByteBuffer creates a non-strict ByteBuffer of n zero bytes
func NewByteBuffer(n int) *ByteBuffer {
	b, err := NewWriter(make([]byte, n))
	if err != nil {
		panic(err)
	}
	return b
}

// Offset returns the current byte position
func (b *ByteBuffer) Offset() int { return b.pos }

// BitOffset returns the current bit position within the byte at Offset
func (b *ByteBuffer) BitOffset() int { return b.bit }

// BitPosition returns the absolute position in bits
func (b *ByteBuffer) BitPosition() int { return b.pos*8 + b.bit }

// Len returns the current size of the buffer
func (b *ByteBuffer) Len() int { return len(b.buffer) }

// Remaining returns the number of bytes from Offset to the end of the buffer
func (b *ByteBuffer) Remaining() int {
	if b.pos > len(b.buffer) {
		return 0
	}
	return len(b.buffer) - b.pos
}

// Bytes returns the internal byte slice of the ByteBuffer
//
// The slice is only valid until the next operation that grows or splices the
// buffer.
func (b *ByteBuffer) Bytes() []byte { return b.buffer }

// Endian returns the default endianness
func (b *ByteBuffer) Endian() Endian { return b.endian }

// SetEndian changes the default endianness
func (b *ByteBuffer) SetEndian(e Endian) error {
	if err := b.check(); err != nil {
		return err
	}
	if e != LittleEndian && e != BigEndian {
		return errors.Wrapf(ErrInvalidArgument, "invalid endianness %v", e)
	}
	b.endian = e
	return nil
}

// Strict reports whether out of range access is an error
func (b *ByteBuffer) Strict() bool { return b.strict }

// SetStrict switches strict mode on or off
func (b *ByteBuffer) SetStrict(strict bool) error {
	if err := b.check(); err != nil {
		return err
	}
	b.strict = strict
	return nil
}

// Close releases the buffer, every operation after Close fails with ErrClosed
func (b *ByteBuffer) Close() error {
	if b.closed {
		return ErrClosed
	}
	b.buffer = nil
	b.pos, b.bit = 0, 0
	b.closed = true
	return nil
}

func (b *ByteBuffer) check() error {
	if b.closed {
		return ErrClosed
	}
	return nil
}

// order resolves the endianness of a single access
func (b *ByteBuffer) order(e Endian) (Endian, error) {
	switch e {
	case DefaultEndian:
		return b.endian, nil
	case LittleEndian, BigEndian:
		return e, nil
	}
	return DefaultEndian, errors.Wrapf(ErrInvalidArgument, "invalid endianness %d", int(e))
}

// alignedStart is where a byte aligned access begins, a partially consumed
// byte is skipped
func (b *ByteBuffer) alignedStart() int {
	if b.bit > 0 {
		return b.pos + 1
	}
	return b.pos
}

// ReadBytes reads n bytes and returns a copy of them
func (b *ByteBuffer) ReadBytes(n int) ([]byte, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, b.fail("ReadBytes", errors.Wrapf(ErrInvalidArgument, "negative length %d", n))
	}
	if err := b.ensure(n, 0); err != nil {
		return nil, b.fail("ReadBytes", err)
	}

	start := b.alignedStart()
	out := make([]byte, n)
	copy(out, b.buffer[start:start+n])
	b.pos, b.bit = start+n, 0

	return out, nil
}

// WriteBytes writes data at the current position
func (b *ByteBuffer) WriteBytes(data []byte) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := b.ensure(len(data), 0); err != nil {
		return b.fail("WriteBytes", err)
	}

	start := b.alignedStart()
	copy(b.buffer[start:], data)
	b.pos, b.bit = start+len(data), 0

	return nil
}

// MustWriteBytes panics if WriteBytes fails
func (b *ByteBuffer) MustWriteBytes(data []byte) {
	if err := b.WriteBytes(data); err != nil {
		panic(err)
	}
}

// Read implements io.Reader, it never grows the buffer
func (b *ByteBuffer) Read(p []byte) (int, error) {
	if err := b.check(); err != nil {
		return 0, err
	}

	start := b.alignedStart()
	if start >= len(b.buffer) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}

	n := copy(p, b.buffer[start:])
	b.pos, b.bit = start+n, 0

	return n, nil
}

// Write implements io.Writer
func (b *ByteBuffer) Write(data []byte) (int, error) {
	if err := b.WriteBytes(data); err != nil {
		return 0, err
	}
	return len(data), nil
}
