package bytebuffer

import (
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
)

// ReadFile maps the file at loc read-only and copies it into a new strict
// ByteBuffer
//
// The buffer owns the copy, the mapping is gone by the time ReadFile returns.
func ReadFile(loc string, opts ...Option) (*ByteBuffer, error) {
	f, err := os.Open(loc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	data := make([]byte, fi.Size())
	if len(data) > 0 {
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return nil, err
		}
		copy(data, m)
		if err := m.Unmap(); err != nil {
			return nil, err
		}
	}

	return NewReader(data, opts...)
}

// WriteFile writes the whole buffer to the file at loc through a shared
// memory mapping, replacing any existing file
func (b *ByteBuffer) WriteFile(loc string) error {
	if err := b.check(); err != nil {
		return err
	}

	// ensure destination directory exists
	if err := os.MkdirAll(filepath.Dir(loc), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Truncate(int64(len(b.buffer))); err != nil {
		return err
	}
	if len(b.buffer) == 0 {
		return nil
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return err
	}
	copy(m, b.buffer)

	if err := m.Flush(); err != nil {
		m.Unmap()
		return err
	}
	return m.Unmap()
}
