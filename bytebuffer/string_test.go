package bytebuffer

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stringCases = []string{"", "MMV", "Suyash", "héllo 世界", "This is a little long string"}

func units(s string, t StringType) int {
	if t == UTF16 || t == WidePascal {
		return len(utf16.Encode([]rune(s)))
	}
	return len(s)
}

func TestStringRoundTrip(t *testing.T) {
	for _, typ := range []StringType{UTF8, UTF16, Pascal, WidePascal} {
		for _, e := range []Endian{LittleEndian, BigEndian} {
			for _, s := range stringCases {
				optsList := []StringOptions{
					{Type: typ, Endian: e},
					{Type: typ, Endian: e, Length: units(s, typ)},
					{Type: typ, Endian: e, Terminate: Terminator(0xFF)},
					{Type: typ, Endian: e, LengthSize: 2},
					{Type: typ, Endian: e, LengthSize: 4},
				}
				if typ == UTF16 {
					optsList[2].Terminate = Terminator(0xFFFF)
				}

				for _, opts := range optsList {
					if opts.Length == 0 && units(s, typ) == 0 && !typ.prefixed() && opts.Terminate == nil {
						// an empty fixed length string is indistinguishable from no length
						opts.Terminate = Terminator(0)
					}

					b := NewByteBuffer(0)
					require.NoError(t, b.WriteString(s, opts), "%v %+v", typ, opts)
					written := b.Offset()

					b.Rewind()
					got, err := b.ReadString(opts)
					require.NoError(t, err)
					assert.Equal(t, s, got, "%v %v %+v", typ, e, opts)
					assert.Equal(t, written, b.Offset(), "%v %+v %q", typ, opts, s)
					assert.Equal(t, 0, b.BitOffset())
				}
			}
		}
	}
}

func TestPascalLayout(t *testing.T) {
	b := NewByteBuffer(0)
	require.NoError(t, b.WriteString("hi", StringOptions{Type: Pascal, LengthSize: 1}))
	assert.Equal(t, []byte{0x02, 'h', 'i'}, b.Bytes())

	b.Rewind()
	s, err := b.ReadString(StringOptions{Type: Pascal, LengthSize: 1})
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
	assert.Equal(t, 3, b.Offset())

	b = NewByteBuffer(0)
	require.NoError(t, b.WriteString("hi", StringOptions{Type: WidePascal, LengthSize: 2, Endian: BigEndian}))
	assert.Equal(t, []byte{0, 2, 0, 'h', 0, 'i'}, b.Bytes())
}

func TestTerminatedLayout(t *testing.T) {
	b := NewByteBuffer(0)
	require.NoError(t, b.WriteString("abc", StringOptions{}))
	assert.Equal(t, []byte{'a', 'b', 'c', 0}, b.Bytes())
	assert.Equal(t, 4, b.Offset())

	b = NewByteBuffer(0)
	require.NoError(t, b.WriteString("ab", StringOptions{Type: UTF16, Endian: LittleEndian}))
	assert.Equal(t, []byte{'a', 0, 'b', 0, 0, 0}, b.Bytes())

	b = NewByteBuffer(0)
	require.NoError(t, b.WriteString("line", StringOptions{Terminate: Terminator('\n')}))
	require.NoError(t, b.WriteString("next", StringOptions{Terminate: Terminator('\n')}))
	assert.Equal(t, "line\nnext\n", string(b.Bytes()))

	b.Rewind()
	s, err := b.ReadString(StringOptions{Terminate: Terminator('\n')})
	require.NoError(t, err)
	assert.Equal(t, "line", s)
	assert.Equal(t, 5, b.Offset())
}

func TestFixedLengthPadding(t *testing.T) {
	b := NewByteBuffer(0)
	require.NoError(t, b.WriteString("hi", StringOptions{Length: 5}))
	assert.Equal(t, []byte{'h', 'i', 0, 0, 0}, b.Bytes())

	b.Rewind()
	s, err := b.ReadString(StringOptions{Length: 5})
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
	assert.Equal(t, 5, b.Offset())

	b.Rewind()
	s, err = b.ReadString(StringOptions{Length: 5, KeepNull: true})
	require.NoError(t, err)
	assert.Equal(t, "hi\x00\x00\x00", s)

	b = NewByteBuffer(0)
	require.NoError(t, b.WriteString("truncated", StringOptions{Length: 5}))
	assert.Equal(t, "trunc", string(b.Bytes()))
}

func TestStripNull(t *testing.T) {
	b, err := NewReader([]byte{'a', 0, 'b', 0, 'c', '|'})
	require.NoError(t, err)

	s, err := b.ReadString(StringOptions{Terminate: Terminator('|')})
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
	assert.Equal(t, 6, b.Offset())

	b.Rewind()
	s, err = b.ReadString(StringOptions{Terminate: Terminator('|'), KeepNull: true})
	require.NoError(t, err)
	assert.Equal(t, "a\x00b\x00c", s)
}

func TestUnterminatedReadStopsAtEnd(t *testing.T) {
	b, err := NewReader([]byte("tail"))
	require.NoError(t, err)

	s, err := b.ReadString(StringOptions{})
	require.NoError(t, err)
	assert.Equal(t, "tail", s)
	assert.Equal(t, 4, b.Offset())
}

func TestStringEncoding(t *testing.T) {
	b := NewByteBuffer(0)
	require.NoError(t, b.WriteString("café", StringOptions{Type: Pascal, Encoding: "latin1"}))
	assert.Equal(t, []byte{4, 'c', 'a', 'f', 0xE9}, b.Bytes())

	b.Rewind()
	s, err := b.ReadString(StringOptions{Type: Pascal, Encoding: "latin1"})
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	assert.ErrorIs(t, b.WriteString("x", StringOptions{Encoding: "no-such-charset"}), ErrInvalidArgument)
	assert.ErrorIs(t, b.WriteString("世界", StringOptions{Encoding: "latin1"}), ErrValueRange)
}

func TestStringErrors(t *testing.T) {
	b := NewByteBuffer(0)

	long := strings.Repeat("x", 256)
	assert.ErrorIs(t, b.WriteString(long, StringOptions{Type: Pascal}), ErrValueRange)
	assert.NoError(t, b.WriteString(long, StringOptions{Type: Pascal, LengthSize: 2}))
	b.Rewind()

	assert.ErrorIs(t, b.WriteString("x", StringOptions{Type: Pascal, LengthSize: 3}), ErrInvalidArgument)
	assert.ErrorIs(t, b.WriteString("x", StringOptions{Type: StringType(9)}), ErrInvalidArgument)
	assert.ErrorIs(t, b.WriteString("x", StringOptions{Terminate: Terminator(0x100)}), ErrInvalidArgument)
	assert.ErrorIs(t, b.WriteString("x", StringOptions{Length: -1}), ErrInvalidArgument)
	assert.Equal(t, 0, b.Offset())

	r, err := NewReader([]byte{5, 'a', 'b'})
	require.NoError(t, err)
	_, err = r.ReadString(StringOptions{Type: Pascal})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, 0, r.Offset())

	_, err = r.ReadString(StringOptions{Length: 4})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, 0, r.Offset())
}

func TestParseStringType(t *testing.T) {
	for _, typ := range []StringType{UTF8, UTF16, Pascal, WidePascal} {
		got, err := ParseStringType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	got, err := ParseStringType("UTF16")
	require.NoError(t, err)
	assert.Equal(t, UTF16, got)

	_, err = ParseStringType("ebcdic")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
