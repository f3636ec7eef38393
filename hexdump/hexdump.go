// Package hexdump renders byte ranges as an address column, a grid of hex
// bytes and a text preview
//
//	          00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f  0123456789abcdef
//	00000000  48 65 6c 6c 6f 2c 20 e4 b8 96 e7 95 8c 00 00 00  Hello, 世  界  ...
//
// The preview decodes UTF-8 on a best effort basis, a multi-byte character is
// shown in the cell of its first byte and its continuation cells are blank.
package hexdump

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLength is the number of bytes rendered when Options.Length is 0
const DefaultLength = 192

// RowLength is the number of bytes on a row
const RowLength = 16

// Options configures Dump
type Options struct {
	Start     int  // first byte to render
	Length    int  // bytes to render, 0 means DefaultLength or whatever remains
	NoUnicode bool // preview printable ASCII only
	Mark      int  // offset flagged with '>' in the grid when Marked is set
	Marked    bool
}

// cells returns the preview text of every byte in data
func cells(data []byte, noUnicode bool) []string {
	out := make([]string, len(data))
	for i := 0; i < len(data); {
		c := data[i]
		if c < utf8.RuneSelf || noUnicode {
			if c >= 0x20 && c < 0x7f {
				out[i] = string(rune(c))
			} else {
				out[i] = "."
			}
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			out[i] = "."
			i++
			continue
		}

		out[i] = string(r)
		for j := 1; j < size; j++ {
			out[i+j] = " "
		}
		i += size
	}
	return out
}

// Dump renders data according to opts, it never modifies data
func Dump(data []byte, opts Options) string {
	start := opts.Start
	if start < 0 {
		start = 0
	}
	if start >= len(data) {
		return ""
	}

	length := opts.Length
	if length <= 0 {
		length = DefaultLength
	}
	end := start + length
	if end > len(data) {
		end = len(data)
	}

	view := data[start:end]
	text := cells(view, opts.NoUnicode)

	var sb strings.Builder

	sb.WriteString("         ")
	for i := 0; i < RowLength; i++ {
		fmt.Fprintf(&sb, " %02x", i)
	}
	sb.WriteString("  ")
	for i := 0; i < RowLength; i++ {
		fmt.Fprintf(&sb, "%x", i)
	}
	sb.WriteByte('\n')

	for row := 0; row < len(view); row += RowLength {
		fmt.Fprintf(&sb, "%08x ", start+row)

		for i := row; i < row+RowLength; i++ {
			switch {
			case i >= len(view):
				sb.WriteString("   ")
			case opts.Marked && start+i == opts.Mark:
				fmt.Fprintf(&sb, ">%02x", view[i])
			default:
				fmt.Fprintf(&sb, " %02x", view[i])
			}
		}

		sb.WriteString("  ")
		for i := row; i < row+RowLength && i < len(view); i++ {
			sb.WriteString(text[i])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
