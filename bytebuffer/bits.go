package bytebuffer

import "github.com/pkg/errors"

// MaxBits is the widest bitfield ReadBits and WriteBits accept
const MaxBits = 32

func checkBits(n int) error {
	if n < 1 || n > MaxBits {
		return errors.Wrapf(ErrInvalidArgument, "bit length %d not in [1, %d]", n, MaxBits)
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// getBits reads n bits starting at absolute bit position p
//
// Little endian takes bits from the least significant end of each byte and
// assembles them low bits first. Big endian takes bits from the most
// significant end and assembles them high bits first.
func (b *ByteBuffer) getBits(p, n int, e Endian) uint64 {
	var v uint64
	for got := 0; got < n; {
		idx, off := p>>3, p&7
		take := minInt(8-off, n-got)
		mask := uint64(1)<<uint(take) - 1

		if e == BigEndian {
			chunk := uint64(b.buffer[idx]>>uint(8-off-take)) & mask
			v = v<<uint(take) | chunk
		} else {
			chunk := uint64(b.buffer[idx]>>uint(off)) & mask
			v |= chunk << uint(got)
		}

		got += take
		p += take
	}
	return v
}

// putBits writes the low n bits of v starting at absolute bit position p,
// leaving the surrounding bits alone
func (b *ByteBuffer) putBits(p, n int, v uint64, e Endian) {
	for done := 0; done < n; {
		idx, off := p>>3, p&7
		take := minInt(8-off, n-done)
		mask := uint64(1)<<uint(take) - 1

		var shift uint
		var chunk uint64
		if e == BigEndian {
			shift = uint(8 - off - take)
			chunk = (v >> uint(n-done-take)) & mask
		} else {
			shift = uint(off)
			chunk = (v >> uint(done)) & mask
		}

		b.buffer[idx] = b.buffer[idx]&^byte(mask<<shift) | byte(chunk<<shift)

		done += take
		p += take
	}
}

// ReadBits reads an n bit field, 1 <= n <= 32, at the current bit position
func (b *ByteBuffer) ReadBits(n int, signed bool, e Endian) (int64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	if err := checkBits(n); err != nil {
		return 0, b.fail("ReadBits", err)
	}
	e, err := b.order(e)
	if err != nil {
		return 0, b.fail("ReadBits", err)
	}
	if err := b.ensure(0, n); err != nil {
		return 0, b.fail("ReadBits", err)
	}

	p := b.BitPosition()
	v := b.getBits(p, n, e)
	b.pos, b.bit = floorDiv8(p + n)

	if signed {
		return signExtend(v, n), nil
	}
	return int64(v), nil
}

// WriteBits writes v as an n bit field, 1 <= n <= 32, at the current bit
// position
func (b *ByteBuffer) WriteBits(v int64, n int, signed bool, e Endian) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := checkBits(n); err != nil {
		return b.fail("WriteBits", err)
	}

	var lo, hi int64
	if signed {
		lo, hi = int64(-1)<<uint(n-1), int64(1)<<uint(n-1)-1
	} else {
		lo, hi = 0, int64(1)<<uint(n)-1
	}
	if v < lo || v > hi {
		return b.fail("WriteBits", errors.Wrapf(ErrValueRange, "%d does not fit in %d bits (signed: %v)", v, n, signed))
	}

	e, err := b.order(e)
	if err != nil {
		return b.fail("WriteBits", err)
	}
	if err := b.ensure(0, n); err != nil {
		return b.fail("WriteBits", err)
	}

	p := b.BitPosition()
	b.putBits(p, n, uint64(v), e)
	b.pos, b.bit = floorDiv8(p + n)

	return nil
}

// ReadBit reads a single bit
func (b *ByteBuffer) ReadBit(e Endian) (bool, error) {
	v, err := b.ReadBits(1, false, e)
	return v == 1, err
}

// WriteBit writes a single bit
func (b *ByteBuffer) WriteBit(set bool, e Endian) error {
	var v int64
	if set {
		v = 1
	}
	return b.WriteBits(v, 1, false, e)
}
