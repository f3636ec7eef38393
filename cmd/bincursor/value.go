package main

import (
	"strconv"
	"strings"

	"github.com/performancecopilot/bitcursor/bytebuffer"
	"github.com/pkg/errors"
)

var intWidths = map[string]int{
	"8":  8,
	"16": 16,
	"32": 32,
	"64": 64,
}

// readValue reads one value of the named type from b
//
// Types are uintN and intN for N in 8, 16, 32, 64, half, float, double,
// bits:N and sbits:N for bitfields, and any string type name.
func readValue(b *bytebuffer.ByteBuffer, typ string, e bytebuffer.Endian, sopts bytebuffer.StringOptions) (interface{}, error) {
	switch {
	case typ == "half":
		return b.ReadHalf(e)
	case typ == "float":
		return b.ReadFloat(e)
	case typ == "double":
		return b.ReadDouble(e)
	case strings.HasPrefix(typ, "bits:"), strings.HasPrefix(typ, "sbits:"):
		i := strings.IndexByte(typ, ':')
		n, err := strconv.Atoi(typ[i+1:])
		if err != nil {
			return nil, errors.Wrapf(bytebuffer.ErrInvalidArgument, "bad bit length in %q", typ)
		}
		return b.ReadBits(n, typ[0] == 's', e)
	case strings.HasPrefix(typ, "uint"):
		if w, ok := intWidths[typ[4:]]; ok {
			if w == 64 {
				return b.Read64(false, e)
			}
			return b.ReadUint(w, e)
		}
	case strings.HasPrefix(typ, "int"):
		if w, ok := intWidths[typ[3:]]; ok {
			if w == 64 {
				return b.Read64(true, e)
			}
			return b.ReadInt(w, e)
		}
	default:
		t, err := bytebuffer.ParseStringType(typ)
		if err != nil {
			return nil, err
		}
		sopts.Type = t
		sopts.Endian = e
		return b.ReadString(sopts)
	}

	return nil, errors.Wrapf(bytebuffer.ErrInvalidArgument, "unknown type %q", typ)
}
