package bytebuffer

import "github.com/pkg/errors"

// ensure makes sure an access of wholeBytes bytes and bits bits starting at
// the current position fits in the buffer, growing it when not strict
//
// It must run before anything is read or written so that a failing access
// leaves the buffer untouched.
func (b *ByteBuffer) ensure(wholeBytes, bits int) error {
	extra := (bits + b.bit + 7) / 8
	return b.ensureEnd(b.pos + wholeBytes + extra)
}

// ensureEnd makes sure the buffer holds at least end bytes
func (b *ByteBuffer) ensureEnd(end int) error {
	if end <= len(b.buffer) {
		return nil
	}

	if b.strict {
		return errors.Wrapf(ErrOutOfBounds, "access up to byte %d, buffer has %d bytes", end, len(b.buffer))
	}

	deficit := end - len(b.buffer)
	n := deficit
	if b.extend > 0 {
		n = ((deficit + b.extend - 1) / b.extend) * b.extend
	}
	b.grow(n)

	return nil
}
