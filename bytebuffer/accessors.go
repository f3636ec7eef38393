package bytebuffer

// Fixed width accessors over ReadUint, ReadInt, WriteUint and WriteInt.
// Single byte accessors take no Endian.

// ReadUint8 reads an uint8
func (b *ByteBuffer) ReadUint8() (uint8, error) {
	v, err := b.ReadUint(8, DefaultEndian)
	return uint8(v), err
}

// WriteUint8 writes an uint8
func (b *ByteBuffer) WriteUint8(v uint8) error {
	return b.WriteUint(uint64(v), 8, DefaultEndian)
}

// MustWriteUint8 panics if WriteUint8 fails
func (b *ByteBuffer) MustWriteUint8(v uint8) {
	if err := b.WriteUint8(v); err != nil {
		panic(err)
	}
}

// ReadInt8 reads an int8
func (b *ByteBuffer) ReadInt8() (int8, error) {
	v, err := b.ReadInt(8, DefaultEndian)
	return int8(v), err
}

// WriteInt8 writes an int8
func (b *ByteBuffer) WriteInt8(v int8) error {
	return b.WriteInt(int64(v), 8, DefaultEndian)
}

// MustWriteInt8 panics if WriteInt8 fails
func (b *ByteBuffer) MustWriteInt8(v int8) {
	if err := b.WriteInt8(v); err != nil {
		panic(err)
	}
}

// ReadUint16 reads an uint16
func (b *ByteBuffer) ReadUint16(e Endian) (uint16, error) {
	v, err := b.ReadUint(16, e)
	return uint16(v), err
}

// WriteUint16 writes an uint16
func (b *ByteBuffer) WriteUint16(v uint16, e Endian) error {
	return b.WriteUint(uint64(v), 16, e)
}

// MustWriteUint16 panics if WriteUint16 fails
func (b *ByteBuffer) MustWriteUint16(v uint16, e Endian) {
	if err := b.WriteUint16(v, e); err != nil {
		panic(err)
	}
}

// ReadInt16 reads an int16
func (b *ByteBuffer) ReadInt16(e Endian) (int16, error) {
	v, err := b.ReadInt(16, e)
	return int16(v), err
}

// WriteInt16 writes an int16
func (b *ByteBuffer) WriteInt16(v int16, e Endian) error {
	return b.WriteInt(int64(v), 16, e)
}

// MustWriteInt16 panics if WriteInt16 fails
func (b *ByteBuffer) MustWriteInt16(v int16, e Endian) {
	if err := b.WriteInt16(v, e); err != nil {
		panic(err)
	}
}

// ReadUint32 reads an uint32
func (b *ByteBuffer) ReadUint32(e Endian) (uint32, error) {
	v, err := b.ReadUint(32, e)
	return uint32(v), err
}

// WriteUint32 writes an uint32
func (b *ByteBuffer) WriteUint32(v uint32, e Endian) error {
	return b.WriteUint(uint64(v), 32, e)
}

// MustWriteUint32 panics if WriteUint32 fails
func (b *ByteBuffer) MustWriteUint32(v uint32, e Endian) {
	if err := b.WriteUint32(v, e); err != nil {
		panic(err)
	}
}

// ReadInt32 reads an int32
func (b *ByteBuffer) ReadInt32(e Endian) (int32, error) {
	v, err := b.ReadInt(32, e)
	return int32(v), err
}

// WriteInt32 writes an int32
func (b *ByteBuffer) WriteInt32(v int32, e Endian) error {
	return b.WriteInt(int64(v), 32, e)
}

// MustWriteInt32 panics if WriteInt32 fails
func (b *ByteBuffer) MustWriteInt32(v int32, e Endian) {
	if err := b.WriteInt32(v, e); err != nil {
		panic(err)
	}
}

// ReadUint64 reads an uint64
func (b *ByteBuffer) ReadUint64(e Endian) (uint64, error) {
	v, err := b.ReadUint(64, e)
	return uint64(v), err
}

// WriteUint64 writes an uint64
func (b *ByteBuffer) WriteUint64(v uint64, e Endian) error {
	return b.WriteUint(uint64(v), 64, e)
}

// MustWriteUint64 panics if WriteUint64 fails
func (b *ByteBuffer) MustWriteUint64(v uint64, e Endian) {
	if err := b.WriteUint64(v, e); err != nil {
		panic(err)
	}
}

// ReadInt64 reads an int64
func (b *ByteBuffer) ReadInt64(e Endian) (int64, error) {
	v, err := b.ReadInt(64, e)
	return int64(v), err
}

// WriteInt64 writes an int64
func (b *ByteBuffer) WriteInt64(v int64, e Endian) error {
	return b.WriteInt(int64(v), 64, e)
}

// MustWriteInt64 panics if WriteInt64 fails
func (b *ByteBuffer) MustWriteInt64(v int64, e Endian) {
	if err := b.WriteInt64(v, e); err != nil {
		panic(err)
	}
}

// MustWriteHalf panics if WriteHalf fails
func (b *ByteBuffer) MustWriteHalf(f float64, e Endian) {
	if err := b.WriteHalf(f, e); err != nil {
		panic(err)
	}
}

// MustWriteFloat panics if WriteFloat fails
func (b *ByteBuffer) MustWriteFloat(f float64, e Endian) {
	if err := b.WriteFloat(f, e); err != nil {
		panic(err)
	}
}

// MustWriteDouble panics if WriteDouble fails
func (b *ByteBuffer) MustWriteDouble(f float64, e Endian) {
	if err := b.WriteDouble(f, e); err != nil {
		panic(err)
	}
}
