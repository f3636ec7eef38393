package bytebuffer

import "github.com/pkg/errors"

// floorDiv8 splits an absolute bit position into byte and bit, rounding
// towards negative infinity
func floorDiv8(bits int) (int, int) {
	q, r := bits/8, bits%8
	if r < 0 {
		q, r = q-1, r+8
	}
	return q, r
}

func (b *ByteBuffer) seekBits(total int) error {
	pos, bit := floorDiv8(total)
	if pos < 0 {
		return errors.Wrapf(ErrOutOfBounds, "seek to negative position %d:%d", pos, bit)
	}
	// a bit offset needs the byte it points into
	if err := b.ensureEnd(pos + (bit+7)/8); err != nil {
		return err
	}

	b.pos, b.bit = pos, bit
	return nil
}

// Skip moves the position by bytes and bits, either of which may be negative
func (b *ByteBuffer) Skip(bytes, bits int) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := b.seekBits(b.BitPosition() + bytes*8 + bits); err != nil {
		return b.fail("Skip", err)
	}
	return nil
}

// MustSkip panics if Skip fails
func (b *ByteBuffer) MustSkip(bytes, bits int) {
	if err := b.Skip(bytes, bits); err != nil {
		panic(err)
	}
}

// Goto sets the position to byte and bit
func (b *ByteBuffer) Goto(byteOffset, bitOffset int) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := b.seekBits(byteOffset*8 + bitOffset); err != nil {
		return b.fail("Goto", err)
	}
	return nil
}

// MustGoto panics if Goto fails
func (b *ByteBuffer) MustGoto(byteOffset, bitOffset int) {
	if err := b.Goto(byteOffset, bitOffset); err != nil {
		panic(err)
	}
}

// Align moves forward to the next multiple of n bytes
//
// An already aligned position, bit offset included, is left alone.
func (b *ByteBuffer) Align(n int) error {
	if err := b.check(); err != nil {
		return err
	}
	if n <= 0 {
		return b.fail("Align", errors.Wrapf(ErrInvalidArgument, "alignment %d", n))
	}

	r := b.pos % n
	if r == 0 {
		return nil
	}
	if err := b.seekBits((b.pos + n - r) * 8); err != nil {
		return b.fail("Align", err)
	}
	return nil
}

// AlignReverse moves back to the previous multiple of n bytes
func (b *ByteBuffer) AlignReverse(n int) error {
	if err := b.check(); err != nil {
		return err
	}
	if n <= 0 {
		return b.fail("AlignReverse", errors.Wrapf(ErrInvalidArgument, "alignment %d", n))
	}

	r := b.pos % n
	if r == 0 {
		return nil
	}
	if err := b.seekBits((b.pos - r) * 8); err != nil {
		return b.fail("AlignReverse", err)
	}
	return nil
}

// Rewind moves to the start of the buffer
func (b *ByteBuffer) Rewind() error {
	if err := b.check(); err != nil {
		return err
	}
	b.pos, b.bit = 0, 0
	return nil
}

// ToEnd moves to the end of the buffer
func (b *ByteBuffer) ToEnd() error {
	if err := b.check(); err != nil {
		return err
	}
	b.pos, b.bit = len(b.buffer), 0
	return nil
}
