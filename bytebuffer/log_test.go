package bytebuffer

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/performancecopilot/bitcursor/hexdump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticHook(t *testing.T) {
	var out bytes.Buffer
	SetLogWriters(&out)
	EnableLogging(true)
	defer func() {
		EnableLogging(false)
		SetLogWriters(os.Stderr)
	}()

	b, err := NewReader([]byte("diagnostics"), WithOffset(8, 0))
	require.NoError(t, err)

	err = b.WriteUint64(1, LittleEndian)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, 8, b.Offset())

	logged := out.String()
	assert.Contains(t, logged, "WriteUint")
	assert.Contains(t, logged, "out of bounds")
	assert.Contains(t, logged, ">69")
	assert.Contains(t, logged, "diagnostics")
}

func TestDiagnosticHookDisabled(t *testing.T) {
	var out bytes.Buffer
	SetLogWriters(&out)
	defer SetLogWriters(os.Stderr)

	b, err := NewReader([]byte{1})
	require.NoError(t, err)

	_, err = b.ReadUint32(BigEndian)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Empty(t, out.String())
}

func TestHexDumpMethod(t *testing.T) {
	b, err := NewReader([]byte("hello"), WithOffset(1, 0))
	require.NoError(t, err)

	dump := b.HexDump(hexdump.Options{})
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "68>65 6c")
	assert.Equal(t, 1, b.Offset())

	require.NoError(t, b.Close())
	assert.Empty(t, b.HexDump(hexdump.Options{}))
}
