package bytebuffer

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// StringType is an enumerated type for the supported string layouts
type StringType int

// Values for StringType
const (
	// UTF8 is a run of bytes ended by a terminator or a fixed length
	UTF8 StringType = iota
	// UTF16 is a run of 16 bit units ended by a terminator or a fixed length
	UTF16
	// Pascal is a run of bytes preceded by its length
	Pascal
	// WidePascal is a run of 16 bit units preceded by their count
	WidePascal
)

var stringTypeNames = map[StringType]string{
	UTF8:       "utf-8",
	UTF16:      "utf-16",
	Pascal:     "pascal",
	WidePascal: "wide-pascal",
}

func (t StringType) String() string {
	if s, ok := stringTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// ParseStringType parses the names returned by StringType.String, "utf8" and
// "utf16" are accepted too
func ParseStringType(s string) (StringType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "utf8":
		return UTF8, nil
	case "utf16":
		return UTF16, nil
	}
	for t, n := range stringTypeNames {
		if n == name {
			return t, nil
		}
	}
	return UTF8, errors.Wrapf(ErrInvalidArgument, "unknown string type %q", s)
}

func (t StringType) unitSize() (int, error) {
	switch t {
	case UTF8, Pascal:
		return 1, nil
	case UTF16, WidePascal:
		return 2, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown string type %d", int(t))
}

func (t StringType) prefixed() bool { return t == Pascal || t == WidePascal }

// StringOptions configures ReadString and WriteString
type StringOptions struct {
	Type StringType

	// Length is the size of the string in units, bytes for UTF8 and 16 bit
	// units for UTF16. Zero reads up to the terminator and writes the whole
	// string. For the Pascal types it overrides the written length.
	Length int

	// Terminate is the unit that ends a UTF8 or UTF16 string. When nil, strings
	// without a Length are terminated by 0 and strings with one are not
	// terminated.
	Terminate *uint16

	// LengthSize is the byte size of the Pascal length prefix, 1, 2 or 4.
	// Zero means 1.
	LengthSize int

	// KeepNull keeps zero units in the decoded string
	KeepNull bool

	// Encoding names the character set of UTF8 and Pascal strings, utf-8 when
	// empty. The 16 bit types are always UTF-16.
	Encoding string

	Endian Endian
}

// Terminator returns a pointer to v, for use in StringOptions
func Terminator(v uint16) *uint16 { return &v }

func (o StringOptions) terminator() (uint16, bool) {
	if o.Terminate != nil {
		return *o.Terminate, true
	}
	if o.Length == 0 {
		return 0, true
	}
	return 0, false
}

func (o StringOptions) lengthSize() (int, error) {
	switch o.LengthSize {
	case 0:
		return 1, nil
	case 1, 2, 4:
		return o.LengthSize, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "length prefix size %d not one of 1, 2, 4", o.LengthSize)
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown encoding %q", name)
	}
	return enc, nil
}

func utf16Encoding(e Endian) encoding.Encoding {
	if e == BigEndian {
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
}

func getUint(data []byte, size int, order binary.ByteOrder) uint64 {
	switch size {
	case 1:
		return uint64(data[0])
	case 2:
		return uint64(order.Uint16(data))
	default:
		return uint64(order.Uint32(data))
	}
}

func putUint(data []byte, v uint64, size int, order binary.ByteOrder) {
	switch size {
	case 1:
		data[0] = byte(v)
	case 2:
		order.PutUint16(data, uint16(v))
	default:
		order.PutUint32(data, uint32(v))
	}
}

// collect gathers count units starting at start, stopping after the
// terminator if there is one, and returns the kept payload bytes and the
// number of units consumed
func (b *ByteBuffer) collect(start, count, unit int, order binary.ByteOrder, term uint16, hasTerm, keepNull bool) ([]byte, int) {
	payload := make([]byte, 0, count*unit)
	consumed := 0
	for ; consumed < count; consumed++ {
		at := start + consumed*unit
		u := uint16(getUint(b.buffer[at:], unit, order))
		if hasTerm && u == term {
			consumed++
			break
		}
		if u == 0 && !keepNull {
			continue
		}
		payload = append(payload, b.buffer[at:at+unit]...)
	}
	return payload, consumed
}

// charset resolves the character encoding of the string layout in opts
func (o StringOptions) charset(e Endian) (encoding.Encoding, error) {
	if o.Type == UTF16 || o.Type == WidePascal {
		return utf16Encoding(e), nil
	}
	return lookupEncoding(o.Encoding)
}

func decode(enc encoding.Encoding, payload []byte, t StringType) (string, error) {
	out, err := enc.NewDecoder().Bytes(payload)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidArgument, "cannot decode %v string: %v", t, err)
	}
	return string(out), nil
}

// ReadString reads a string laid out as described by opts
//
// The position ends up right after the last consumed byte, terminator and
// length prefix included, with no bit offset.
func (b *ByteBuffer) ReadString(opts StringOptions) (string, error) {
	if err := b.check(); err != nil {
		return "", err
	}

	s, end, err := b.readString(opts)
	if err != nil {
		return "", b.fail("ReadString", err)
	}

	b.pos, b.bit = end, 0
	return s, nil
}

func (b *ByteBuffer) readString(opts StringOptions) (string, int, error) {
	unit, err := opts.Type.unitSize()
	if err != nil {
		return "", 0, err
	}
	if opts.Length < 0 {
		return "", 0, errors.Wrapf(ErrInvalidArgument, "negative string length %d", opts.Length)
	}

	e, err := b.order(opts.Endian)
	if err != nil {
		return "", 0, err
	}
	enc, err := opts.charset(e)
	if err != nil {
		return "", 0, err
	}
	order := e.byteOrder()
	start := b.alignedStart()
	before := len(b.buffer)

	var (
		count   int
		term    uint16
		hasTerm bool
	)

	if opts.Type.prefixed() {
		size, err := opts.lengthSize()
		if err != nil {
			return "", 0, err
		}
		if err := b.ensureEnd(start + size); err != nil {
			return "", 0, err
		}
		count = int(getUint(b.buffer[start:], size, order))
		start += size
	} else {
		term, hasTerm = opts.terminator()
		count = opts.Length
		if count == 0 {
			count = (len(b.buffer) - start) / unit
			if count < 0 {
				count = 0
			}
		}
	}

	if err := b.ensureEnd(start + count*unit); err != nil {
		return "", 0, err
	}

	payload, consumed := b.collect(start, count, unit, order, term, hasTerm, opts.KeepNull)
	s, err := decode(enc, payload, opts.Type)
	if err != nil {
		b.buffer = b.buffer[:before]
		return "", 0, err
	}

	return s, start + consumed*unit, nil
}

func encode(enc encoding.Encoding, s string, t StringType) ([]byte, error) {
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(ErrValueRange, "cannot encode %q as %v: %v", s, t, err)
	}
	return out, nil
}

// WriteString writes s laid out as described by opts
//
// Content longer than opts.Length is truncated and shorter content is padded
// with zeros.
func (b *ByteBuffer) WriteString(s string, opts StringOptions) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := b.writeString(s, opts); err != nil {
		return b.fail("WriteString", err)
	}
	return nil
}

// MustWriteString panics if WriteString fails
func (b *ByteBuffer) MustWriteString(s string, opts StringOptions) {
	if err := b.WriteString(s, opts); err != nil {
		panic(err)
	}
}

func (b *ByteBuffer) writeString(s string, opts StringOptions) error {
	unit, err := opts.Type.unitSize()
	if err != nil {
		return err
	}
	if opts.Length < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative string length %d", opts.Length)
	}

	e, err := b.order(opts.Endian)
	if err != nil {
		return err
	}
	enc, err := opts.charset(e)
	if err != nil {
		return err
	}
	order := e.byteOrder()

	payload, err := encode(enc, s, opts.Type)
	if err != nil {
		return err
	}

	count := len(payload) / unit
	if opts.Length > 0 {
		count = opts.Length
	}

	var (
		prefix  int
		term    uint16
		hasTerm bool
	)

	if opts.Type.prefixed() {
		if prefix, err = opts.lengthSize(); err != nil {
			return err
		}
		if limit := uint64(1)<<uint(8*prefix) - 1; uint64(count) > limit {
			return errors.Wrapf(ErrValueRange, "%d units do not fit a %d byte length prefix", count, prefix)
		}
	} else {
		term, hasTerm = opts.terminator()
		if hasTerm && unit == 1 && term > 0xff {
			return errors.Wrapf(ErrInvalidArgument, "terminator %#x does not fit a byte", term)
		}
	}

	span := prefix + count*unit
	if hasTerm {
		span += unit
	}

	if err := b.ensure(span, 0); err != nil {
		return err
	}

	start := b.alignedStart()
	data := b.buffer[start : start+span]
	if prefix > 0 {
		putUint(data, uint64(count), prefix, order)
	}

	body := data[prefix : prefix+count*unit]
	n := copy(body, payload)
	for i := n; i < len(body); i++ {
		body[i] = 0
	}

	if hasTerm {
		putUint(data[prefix+count*unit:], uint64(term), unit, order)
	}

	b.pos, b.bit = start+span, 0
	return nil
}
