package bytebuffer

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
)

// MaxSafeInteger is the largest magnitude Read64 returns as a native integer
// unless wide integers are enforced
const MaxSafeInteger = 1<<53 - 1

func (e Endian) byteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func checkWidth(width int) error {
	switch width {
	case 8, 16, 32, 64:
		return nil
	}
	return errors.Wrapf(ErrInvalidArgument, "integer width %d not one of 8, 16, 32, 64", width)
}

// readRaw reads width bits as an unsigned value at the next whole byte
func (b *ByteBuffer) readRaw(width int, e Endian) (uint64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	if err := checkWidth(width); err != nil {
		return 0, err
	}

	e, err := b.order(e)
	if err != nil {
		return 0, err
	}

	n := width / 8
	if err := b.ensure(n, 0); err != nil {
		return 0, err
	}

	start := b.alignedStart()
	data := b.buffer[start : start+n]
	order := e.byteOrder()

	var v uint64
	switch width {
	case 8:
		v = uint64(data[0])
	case 16:
		v = uint64(order.Uint16(data))
	case 32:
		v = uint64(order.Uint32(data))
	case 64:
		v = order.Uint64(data)
	}

	b.pos, b.bit = start+n, 0
	return v, nil
}

// writeRaw writes the low width bits of v at the next whole byte
func (b *ByteBuffer) writeRaw(v uint64, width int, e Endian) error {
	e, err := b.order(e)
	if err != nil {
		return err
	}

	n := width / 8
	if err := b.ensure(n, 0); err != nil {
		return err
	}

	start := b.alignedStart()
	data := b.buffer[start : start+n]
	order := e.byteOrder()

	switch width {
	case 8:
		data[0] = byte(v)
	case 16:
		order.PutUint16(data, uint16(v))
	case 32:
		order.PutUint32(data, uint32(v))
	case 64:
		order.PutUint64(data, v)
	}

	b.pos, b.bit = start+n, 0
	return nil
}

func signExtend(v uint64, width int) int64 {
	shift := uint(64 - width)
	return int64(v<<shift) >> shift
}

// ReadUint reads an unsigned integer of width 8, 16, 32 or 64 bits
func (b *ByteBuffer) ReadUint(width int, e Endian) (uint64, error) {
	v, err := b.readRaw(width, e)
	if err != nil {
		return 0, b.fail("ReadUint", err)
	}
	return v, nil
}

// ReadInt reads a signed integer of width 8, 16, 32 or 64 bits
func (b *ByteBuffer) ReadInt(width int, e Endian) (int64, error) {
	v, err := b.readRaw(width, e)
	if err != nil {
		return 0, b.fail("ReadInt", err)
	}
	return signExtend(v, width), nil
}

// WriteUint writes v as an unsigned integer of width 8, 16, 32 or 64 bits
func (b *ByteBuffer) WriteUint(v uint64, width int, e Endian) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := checkWidth(width); err != nil {
		return b.fail("WriteUint", err)
	}
	if width < 64 && v>>uint(width) != 0 {
		return b.fail("WriteUint", errors.Wrapf(ErrValueRange, "%d does not fit in %d unsigned bits", v, width))
	}
	if err := b.writeRaw(v, width, e); err != nil {
		return b.fail("WriteUint", err)
	}
	return nil
}

// WriteInt writes v as a signed integer of width 8, 16, 32 or 64 bits
func (b *ByteBuffer) WriteInt(v int64, width int, e Endian) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := checkWidth(width); err != nil {
		return b.fail("WriteInt", err)
	}
	if width < 64 {
		lo, hi := int64(-1)<<uint(width-1), int64(1)<<uint(width-1)-1
		if v < lo || v > hi {
			return b.fail("WriteInt", errors.Wrapf(ErrValueRange, "%d does not fit in %d signed bits", v, width))
		}
	}
	if err := b.writeRaw(uint64(v), width, e); err != nil {
		return b.fail("WriteInt", err)
	}
	return nil
}

// ReadWide reads a 64 bit integer as a *big.Int
func (b *ByteBuffer) ReadWide(signed bool, e Endian) (*big.Int, error) {
	v, err := b.readRaw(64, e)
	if err != nil {
		return nil, b.fail("ReadWide", err)
	}
	if signed {
		return big.NewInt(int64(v)), nil
	}
	return new(big.Int).SetUint64(v), nil
}

// WriteWide writes v as a 64 bit integer
func (b *ByteBuffer) WriteWide(v *big.Int, signed bool, e Endian) error {
	if err := b.check(); err != nil {
		return err
	}
	if v == nil {
		return b.fail("WriteWide", errors.Wrap(ErrInvalidArgument, "nil integer"))
	}

	var raw uint64
	switch {
	case signed && v.IsInt64():
		raw = uint64(v.Int64())
	case !signed && v.IsUint64():
		raw = v.Uint64()
	default:
		return b.fail("WriteWide", errors.Wrapf(ErrValueRange, "%s does not fit in 64 bits (signed: %v)", v, signed))
	}

	if err := b.writeRaw(raw, 64, e); err != nil {
		return b.fail("WriteWide", err)
	}
	return nil
}

// Read64 reads a 64 bit integer, returning an int64 or uint64 when the value
// is within ±MaxSafeInteger and a *big.Int otherwise
//
// With EnforceWideInt set it always returns a *big.Int.
func (b *ByteBuffer) Read64(signed bool, e Endian) (interface{}, error) {
	v, err := b.readRaw(64, e)
	if err != nil {
		return nil, b.fail("Read64", err)
	}

	if signed {
		s := int64(v)
		if !b.wide && s >= -MaxSafeInteger && s <= MaxSafeInteger {
			return s, nil
		}
		return big.NewInt(s), nil
	}

	if !b.wide && v <= MaxSafeInteger {
		return v, nil
	}
	return new(big.Int).SetUint64(v), nil
}
