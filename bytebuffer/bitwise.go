package bytebuffer

import "github.com/pkg/errors"

// BitOp is an enumerated type for the bulk byte transforms
type BitOp int

// Values for BitOp
const (
	OpAnd BitOp = iota
	OpOr
	OpXor
	OpNot
	OpLShift
	OpRShift
	OpAdd
)

func (op BitOp) String() string {
	switch op {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpNot:
		return "not"
	case OpLShift:
		return "lshift"
	case OpRShift:
		return "rshift"
	case OpAdd:
		return "add"
	}
	return "unknown"
}

// ParseBitOp parses the names returned by BitOp.String
func ParseBitOp(s string) (BitOp, error) {
	for op := OpAnd; op <= OpAdd; op++ {
		if op.String() == s {
			return op, nil
		}
	}
	return OpAnd, errors.Wrapf(ErrInvalidArgument, "unknown bitwise operation %q", s)
}

func (op BitOp) apply(v, k byte) byte {
	switch op {
	case OpAnd:
		return v & k
	case OpOr:
		return v | k
	case OpXor:
		return v ^ k
	case OpNot:
		return ^v
	case OpLShift:
		return v << k
	case OpRShift:
		return v >> k
	default:
		return v + k
	}
}

// Transform applies op to every byte in [start, end), using key cycled from
// its first byte at start
//
// A one byte key broadcasts a scalar. OpNot ignores key. With consume set the
// position ends on the last transformed byte, end-1, and is left alone for an
// empty range.
func (b *ByteBuffer) Transform(op BitOp, start, end int, key []byte, consume bool) error {
	if err := b.check(); err != nil {
		return err
	}
	if op < OpAnd || op > OpAdd {
		return b.fail("Transform", errors.Wrapf(ErrInvalidArgument, "unknown bitwise operation %d", int(op)))
	}
	if op != OpNot && len(key) == 0 {
		return b.fail("Transform", errors.Wrapf(ErrInvalidArgument, "empty key for %v", op))
	}
	if err := b.checkRange(start, end); err != nil {
		return b.fail("Transform", err)
	}
	if err := b.ensureEnd(end); err != nil {
		return b.fail("Transform", err)
	}

	for i := start; i < end; i++ {
		var k byte
		if op != OpNot {
			k = key[(i-start)%len(key)]
		}
		b.buffer[i] = op.apply(b.buffer[i], k)

		if consume {
			b.pos, b.bit = i, 0
		}
	}

	return nil
}

// And ands every byte in [start, end) with key
func (b *ByteBuffer) And(start, end int, key []byte, consume bool) error {
	return b.Transform(OpAnd, start, end, key, consume)
}

// Or ors every byte in [start, end) with key
func (b *ByteBuffer) Or(start, end int, key []byte, consume bool) error {
	return b.Transform(OpOr, start, end, key, consume)
}

// Xor xors every byte in [start, end) with key
func (b *ByteBuffer) Xor(start, end int, key []byte, consume bool) error {
	return b.Transform(OpXor, start, end, key, consume)
}

// Not inverts every byte in [start, end)
func (b *ByteBuffer) Not(start, end int, consume bool) error {
	return b.Transform(OpNot, start, end, nil, consume)
}

// LShift shifts every byte in [start, end) left by key
func (b *ByteBuffer) LShift(start, end int, key []byte, consume bool) error {
	return b.Transform(OpLShift, start, end, key, consume)
}

// RShift shifts every byte in [start, end) right by key
func (b *ByteBuffer) RShift(start, end int, key []byte, consume bool) error {
	return b.Transform(OpRShift, start, end, key, consume)
}

// Add adds key to every byte in [start, end), wrapping at 256
func (b *ByteBuffer) Add(start, end int, key []byte, consume bool) error {
	return b.Transform(OpAdd, start, end, key, consume)
}
