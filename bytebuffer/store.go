package bytebuffer

import "github.com/pkg/errors"

// grow appends n zero bytes
func (b *ByteBuffer) grow(n int) {
	b.buffer = append(b.buffer, make([]byte, n)...)
}

// spliceExtract returns a copy of [start, end), then erases the range, fills
// it, or leaves the buffer alone
func (b *ByteBuffer) spliceExtract(start, end int, erase bool, fill *byte) []byte {
	out := make([]byte, end-start)
	copy(out, b.buffer[start:end])

	switch {
	case erase:
		rest := make([]byte, len(b.buffer)-(end-start))
		copy(rest, b.buffer[:start])
		copy(rest[start:], b.buffer[end:])
		b.buffer = rest
	case fill != nil:
		for i := start; i < end; i++ {
			b.buffer[i] = *fill
		}
	}

	return out
}

// spliceInsert writes data at at, replacing len(data) bytes or shifting the
// tail right
func (b *ByteBuffer) spliceInsert(data []byte, at int, replace bool) {
	if replace {
		copy(b.buffer[at:], data)
		return
	}

	out := make([]byte, len(b.buffer)+len(data))
	copy(out, b.buffer[:at])
	copy(out[at:], data)
	copy(out[at+len(data):], b.buffer[at:])
	b.buffer = out
}

func (b *ByteBuffer) checkRange(start, end int) error {
	if start < 0 || end < start {
		return errors.Wrapf(ErrInvalidArgument, "invalid range [%d, %d)", start, end)
	}
	return nil
}

// clamp keeps the cursor inside the buffer after it shrinks
func (b *ByteBuffer) clamp() {
	if b.pos > len(b.buffer) {
		b.pos, b.bit = len(b.buffer), 0
	}
}

// Extend grows the buffer by n zero bytes, regardless of strict mode
func (b *ByteBuffer) Extend(n int) error {
	if err := b.check(); err != nil {
		return err
	}
	if n < 0 {
		return b.fail("Extend", errors.Wrapf(ErrInvalidArgument, "negative extension %d", n))
	}
	b.grow(n)
	return nil
}

func (b *ByteBuffer) extract(op string, start, end int, consume, erase bool, fill *byte) ([]byte, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if err := b.checkRange(start, end); err != nil {
		return nil, b.fail(op, err)
	}
	if erase && b.strict {
		return nil, b.fail(op, errors.Wrap(ErrUnsupported, "cannot remove bytes from a strict buffer"))
	}
	if err := b.ensureEnd(end); err != nil {
		return nil, b.fail(op, err)
	}

	out := b.spliceExtract(start, end, erase, fill)

	switch {
	case consume && erase:
		b.pos, b.bit = start, 0
	case consume:
		b.pos, b.bit = end, 0
	default:
		b.clamp()
	}

	return out, nil
}

// Lift returns a copy of the bytes in [start, end)
func (b *ByteBuffer) Lift(start, end int, consume bool) ([]byte, error) {
	return b.extract("Lift", start, end, consume, false, nil)
}

// Fill returns a copy of the bytes in [start, end) and overwrites them with value
func (b *ByteBuffer) Fill(start, end int, value byte, consume bool) ([]byte, error) {
	return b.extract("Fill", start, end, consume, false, &value)
}

// Remove cuts the bytes in [start, end) out of the buffer and returns them
//
// Removing is not allowed on a strict buffer.
func (b *ByteBuffer) Remove(start, end int, consume bool) ([]byte, error) {
	return b.extract("Remove", start, end, consume, true, nil)
}

func (b *ByteBuffer) insert(op string, data []byte, at int, consume, replace bool) error {
	if err := b.check(); err != nil {
		return err
	}
	if at < 0 {
		return b.fail(op, errors.Wrapf(ErrInvalidArgument, "negative offset %d", at))
	}

	end := at
	if replace {
		end += len(data)
	}
	if err := b.ensureEnd(end); err != nil {
		return b.fail(op, err)
	}

	b.spliceInsert(data, at, replace)

	if consume {
		b.pos, b.bit = at+len(data), 0
	}

	return nil
}

// Insert inserts data at byte offset at, shifting the following bytes right
func (b *ByteBuffer) Insert(data []byte, at int, consume bool) error {
	return b.insert("Insert", data, at, consume, false)
}

// Replace overwrites len(data) bytes starting at byte offset at
func (b *ByteBuffer) Replace(data []byte, at int, consume bool) error {
	return b.insert("Replace", data, at, consume, true)
}
