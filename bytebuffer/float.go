package bytebuffer

import (
	"math"

	"github.com/pkg/errors"
)

// MaxHalf is the largest finite IEEE-754 binary16 value
const MaxHalf = 65504

// halfOverflow is halfway between MaxHalf and 2^16, the first magnitude that
// rounds to infinity
const halfOverflow = 65520

// halfToFloat decodes an IEEE-754 binary16 value: 1 sign bit, 5 exponent bits
// with a bias of 15 and 10 fraction bits
func halfToFloat(h uint16) float64 {
	sign := 1.0
	if h&0x8000 != 0 {
		sign = -1
	}
	exp := int(h>>10) & 0x1f
	frac := float64(h & 0x3ff)

	switch exp {
	case 0:
		return math.Copysign(math.Ldexp(frac/1024, -14), sign)
	case 0x1f:
		if frac == 0 {
			return math.Inf(int(sign))
		}
		return math.NaN()
	}
	return math.Copysign(math.Ldexp(1+frac/1024, exp-15), sign)
}

// floatToHalf encodes f as IEEE-754 binary16, rounding to nearest even
func floatToHalf(f float64) (uint16, error) {
	var sign uint16
	if math.Signbit(f) {
		sign = 0x8000
	}

	switch {
	case math.IsNaN(f):
		return sign | 0x7e00, nil
	case math.IsInf(f, 0):
		return sign | 0x7c00, nil
	}

	a := math.Abs(f)
	if a >= halfOverflow {
		return 0, errors.Wrapf(ErrValueRange, "%v exceeds half precision range", f)
	}
	if a == 0 {
		return sign, nil
	}

	frac, exp := math.Frexp(a)
	exp--

	if exp < -14 {
		// subnormal, a carry to 1024 lands on the smallest normal
		return sign | uint16(math.RoundToEven(math.Ldexp(a, 24))), nil
	}

	m := math.RoundToEven((2*frac - 1) * 1024)
	if m == 1024 {
		m = 0
		exp++
	}

	return sign | uint16(exp+15)<<10 | uint16(m), nil
}

// ReadHalf reads an IEEE-754 binary16 value
func (b *ByteBuffer) ReadHalf(e Endian) (float64, error) {
	v, err := b.readRaw(16, e)
	if err != nil {
		return 0, b.fail("ReadHalf", err)
	}
	return halfToFloat(uint16(v)), nil
}

// WriteHalf writes f as an IEEE-754 binary16 value
func (b *ByteBuffer) WriteHalf(f float64, e Endian) error {
	if err := b.check(); err != nil {
		return err
	}
	h, err := floatToHalf(f)
	if err != nil {
		return b.fail("WriteHalf", err)
	}
	if err := b.writeRaw(uint64(h), 16, e); err != nil {
		return b.fail("WriteHalf", err)
	}
	return nil
}

// ReadFloat reads an IEEE-754 binary32 value
func (b *ByteBuffer) ReadFloat(e Endian) (float32, error) {
	v, err := b.readRaw(32, e)
	if err != nil {
		return 0, b.fail("ReadFloat", err)
	}
	return math.Float32frombits(uint32(v)), nil
}

// WriteFloat writes f as an IEEE-754 binary32 value
func (b *ByteBuffer) WriteFloat(f float64, e Endian) error {
	if err := b.check(); err != nil {
		return err
	}
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return b.fail("WriteFloat", errors.Wrapf(ErrValueRange, "%v exceeds single precision range", f))
	}
	if err := b.writeRaw(uint64(math.Float32bits(float32(f))), 32, e); err != nil {
		return b.fail("WriteFloat", err)
	}
	return nil
}

// ReadDouble reads an IEEE-754 binary64 value
func (b *ByteBuffer) ReadDouble(e Endian) (float64, error) {
	v, err := b.readRaw(64, e)
	if err != nil {
		return 0, b.fail("ReadDouble", err)
	}
	return math.Float64frombits(v), nil
}

// WriteDouble writes f as an IEEE-754 binary64 value
func (b *ByteBuffer) WriteDouble(f float64, e Endian) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := b.writeRaw(math.Float64bits(f), 64, e); err != nil {
		return b.fail("WriteDouble", err)
	}
	return nil
}
