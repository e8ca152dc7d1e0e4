package mapper

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

var ErrEmpty = errors.New("data source is empty")

// Reader memory-maps a payload file.
type Reader struct {
	dataSourceName string
	reader         *mmap.ReaderAt
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Open() error {
	var err error
	r.reader, err = mmap.Open(r.dataSourceName)
	if err != nil {
		return fmt.Errorf("unable to open data source %q: %w", r.dataSourceName, err)
	}
	return nil
}

func (r *Reader) Close() {
	if r.reader != nil {
		_ = r.reader.Close()
	}
}

func (r *Reader) Len() int {
	if r.reader == nil {
		return 0
	}
	return r.reader.Len()
}

// Bytes copies the mapped content so it stays valid after Close.
func (r *Reader) Bytes() ([]byte, error) {
	if r.Len() == 0 {
		return nil, fmt.Errorf("%q: %w", r.dataSourceName, ErrEmpty)
	}
	buffer := make([]byte, r.Len())
	n, err := r.reader.ReadAt(buffer, 0)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("unable to read %q: %w", r.dataSourceName, err)
	}
	return buffer[:n], nil
}

func ReadFile(dataSourceName string) ([]byte, error) {
	r := NewReader(dataSourceName)
	if err := r.Open(); err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Bytes()
}
