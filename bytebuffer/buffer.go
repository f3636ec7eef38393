// Package bytebuffer implements a cursor over a growable byte buffer
//
// bytes.Buffer only appends and reads from the front, and encoding/binary
// needs a position threaded through every call, like
//
//	pos = putUint32(data, pos, v)
//
// which stops being maintainable once values stop being byte aligned.
//
// A ByteBuffer keeps a byte offset and a 0-7 bit offset and moves them with
// every read, write and seek. Values can be integers of 8 to 64 bits, bitfields
// of 1 to 32 bits, half, single and double floats and strings in four layouts.
//
// A strict buffer (the NewReader default) fails any access past its end with
// ErrOutOfBounds. A non-strict buffer (the NewWriter default) grows instead.
// A failed operation leaves both the buffer and the position as they were.
package bytebuffer

import "io"

// Cursor defines an abstraction for an object that allows reading and writing
// binary values anywhere within a buffer
type Cursor interface {
	io.Reader
	io.Writer
	Bytes() []byte
	Len() int
	Offset() int
	BitOffset() int
	Goto(byteOffset, bitOffset int) error
	Skip(bytes, bits int) error
	ReadUint(width int, e Endian) (uint64, error)
	ReadInt(width int, e Endian) (int64, error)
	WriteUint(v uint64, width int, e Endian) error
	WriteInt(v int64, width int, e Endian) error
	ReadBits(n int, signed bool, e Endian) (int64, error)
	WriteBits(v int64, n int, signed bool, e Endian) error
	ReadHalf(e Endian) (float64, error)
	WriteHalf(f float64, e Endian) error
	ReadFloat(e Endian) (float32, error)
	WriteFloat(f float64, e Endian) error
	ReadDouble(e Endian) (float64, error)
	WriteDouble(f float64, e Endian) error
	ReadString(opts StringOptions) (string, error)
	WriteString(s string, opts StringOptions) error
	Close() error
}

var _ Cursor = (*ByteBuffer)(nil)
