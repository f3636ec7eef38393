package bytebuffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfSpecialValues(t *testing.T) {
	cases := []struct {
		val  float64
		bits uint16
	}{
		{0, 0x0000},
		{math.Copysign(0, -1), 0x8000},
		{math.Inf(1), 0x7c00},
		{math.Inf(-1), 0xfc00},
		{math.Ldexp(1, -24), 0x0001},    // smallest subnormal
		{math.Ldexp(1023, -24), 0x03ff}, // largest subnormal
		{math.Ldexp(1, -14), 0x0400},    // smallest normal
		{MaxHalf, 0x7bff},               // largest normal
		{1, 0x3c00},
		{-2, 0xc000},
		{0.333251953125, 0x3555},
	}

	for _, c := range cases {
		for _, e := range []Endian{LittleEndian, BigEndian} {
			b := NewByteBuffer(0)
			require.NoError(t, b.WriteHalf(c.val, e))

			b.Rewind()
			raw, err := b.ReadUint16(e)
			require.NoError(t, err)
			assert.Equal(t, c.bits, raw, "encoding %v", c.val)

			b.Rewind()
			got, err := b.ReadHalf(e)
			require.NoError(t, err)
			assert.Equal(t, math.Float64bits(c.val), math.Float64bits(got), "decoding %v", c.val)
		}
	}
}

func TestHalfNaN(t *testing.T) {
	b := NewByteBuffer(0)
	require.NoError(t, b.WriteHalf(math.NaN(), DefaultEndian))

	b.Rewind()
	got, err := b.ReadHalf(DefaultEndian)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	b, err = NewReader([]byte{0x01, 0x7c})
	require.NoError(t, err)
	got, err = b.ReadHalf(LittleEndian)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestHalfRounding(t *testing.T) {
	cases := []struct {
		val  float64
		bits uint16
	}{
		{1 + math.Ldexp(1, -11), 0x3c00},   // tie rounds to even
		{1 + 3*math.Ldexp(1, -11), 0x3c02}, // tie rounds to even
		{2 - math.Ldexp(1, -12), 0x4000},   // carries into the exponent
		{math.Ldexp(1, -25), 0x0000},       // tie with zero
		{math.Ldexp(1023.5, -24), 0x0400},  // subnormal carries to normal
	}

	for _, c := range cases {
		h, err := floatToHalf(c.val)
		require.NoError(t, err)
		assert.Equal(t, c.bits, h, "%v", c.val)
	}
}

func TestHalfRange(t *testing.T) {
	b := NewByteBuffer(2)
	assert.ErrorIs(t, b.WriteHalf(65520, DefaultEndian), ErrValueRange)
	assert.ErrorIs(t, b.WriteHalf(-65520, DefaultEndian), ErrValueRange)
	assert.ErrorIs(t, b.WriteHalf(-1e10, DefaultEndian), ErrValueRange)
	assert.Equal(t, 0, b.Offset())
	assert.Equal(t, []byte{0, 0}, b.Bytes())

	// values below the halfway point round down to the largest half
	for _, v := range []float64{65505, 65510, 65519, 65519.99} {
		h, err := floatToHalf(v)
		require.NoError(t, err, "%v", v)
		assert.Equal(t, uint16(0x7bff), h, "%v", v)

		h, err = floatToHalf(-v)
		require.NoError(t, err, "%v", -v)
		assert.Equal(t, uint16(0xfbff), h, "%v", -v)
	}
}

func TestFloatSpecialValues(t *testing.T) {
	cases := []float32{
		0,
		float32(math.Copysign(0, -1)),
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		math.SmallestNonzeroFloat32,
		math.MaxFloat32,
		-1.5,
	}

	for _, v := range cases {
		for _, e := range []Endian{LittleEndian, BigEndian} {
			b := NewByteBuffer(0)
			require.NoError(t, b.WriteFloat(float64(v), e))
			assert.Equal(t, 4, b.Len())

			b.Rewind()
			got, err := b.ReadFloat(e)
			require.NoError(t, err)
			assert.Equal(t, math.Float32bits(v), math.Float32bits(got))
		}
	}

	b := NewByteBuffer(0)
	require.NoError(t, b.WriteFloat(math.NaN(), BigEndian))
	b.Rewind()
	got, err := b.ReadFloat(BigEndian)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(got)))

	assert.ErrorIs(t, b.WriteFloat(math.MaxFloat64, BigEndian), ErrValueRange)
}

func TestDoubleSpecialValues(t *testing.T) {
	cases := []float64{
		0,
		math.Copysign(0, -1),
		math.Inf(1),
		math.Inf(-1),
		math.SmallestNonzeroFloat64,
		math.MaxFloat64,
		math.Pi,
	}

	for _, v := range cases {
		for _, e := range []Endian{LittleEndian, BigEndian} {
			b := NewByteBuffer(0)
			require.NoError(t, b.WriteDouble(v, e))
			assert.Equal(t, 8, b.Len())

			b.Rewind()
			got, err := b.ReadDouble(e)
			require.NoError(t, err)
			assert.Equal(t, math.Float64bits(v), math.Float64bits(got))
		}
	}

	b := NewByteBuffer(0)
	require.NoError(t, b.WriteDouble(math.NaN(), LittleEndian))
	b.Rewind()
	got, err := b.ReadDouble(LittleEndian)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestDoubleBytes(t *testing.T) {
	b := NewByteBuffer(0)
	require.NoError(t, b.WriteDouble(1, BigEndian))
	assert.Equal(t, []byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, b.Bytes())
}
