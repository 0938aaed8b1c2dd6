// Package buffer implements low-level helpers to serialize objects on
// io.Writer and deserialize them from io.Reader, with big-endian fixed-size
// encodings.
package buffer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// NewBuffer returns a new *bytes.Buffer whose content is b.
func NewBuffer(b []byte) *bytes.Buffer {
	return bytes.NewBuffer(b)
}

// NewBufferSize returns a new empty *bytes.Buffer with capacity size.
func NewBufferSize(size int) *bytes.Buffer {
	return bytes.NewBuffer(make([]byte, 0, size))
}

// Writer is an io.Writer that can be flushed, such as a *bufio.Writer.
type Writer interface {
	io.Writer
	Flush() error
}

// WriteAsUint64 writes c, cast to an uint64, on w.
func WriteAsUint64[T constraints.Integer](w io.Writer, c T) (n int64, err error) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(c))
	inc, err := w.Write(buf[:])
	return int64(inc), err
}

// ReadAsUint64 reads an uint64 from r and stores it, cast to T, in *c.
func ReadAsUint64[T constraints.Integer](r io.Reader, c *T) (n int64, err error) {
	var buf [8]byte
	inc, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(inc), err
	}
	*c = T(binary.BigEndian.Uint64(buf[:]))
	return int64(inc), nil
}

// Write writes b on w, returning the number of bytes written as an int64.
func Write(w io.Writer, b []byte) (n int64, err error) {
	inc, err := w.Write(b)
	return int64(inc), err
}

// Read reads len(b) bytes from r into b.
func Read(r io.Reader, b []byte) (n int64, err error) {
	inc, err := io.ReadFull(r, b)
	return int64(inc), err
}

// WriteBytesSlice writes a length-prefixed byte slice on w.
func WriteBytesSlice(w io.Writer, b []byte) (n int64, err error) {
	if n, err = WriteAsUint64(w, len(b)); err != nil {
		return n, err
	}
	inc, err := Write(w, b)
	return n + inc, err
}

// ReadBytesSlice reads a length-prefixed byte slice from r.
func ReadBytesSlice(r io.Reader, b *[]byte) (n int64, err error) {
	var size int
	if n, err = ReadAsUint64(r, &size); err != nil {
		return n, err
	}
	*b = make([]byte, size)
	inc, err := Read(r, *b)
	return n + inc, err
}

// BytesSliceBinarySize returns the serialized size of a length-prefixed
// byte slice.
func BytesSliceBinarySize(b []byte) int {
	return 8 + len(b)
}

// CheckFlushed returns an error if n does not match the expected serialized
// size of the object.
func CheckFlushed(n int64, size int) error {
	if n != int64(size) {
		return fmt.Errorf("invalid serialization: wrote/read %d bytes, expected %d", n, size)
	}
	return nil
}
