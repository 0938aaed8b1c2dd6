package structs

import (
	"fmt"
	"io"

	"github.com/p-adic-fhe/pfhe/utils/buffer"
)

// Vector is a struct wrapping a slice of components of type T.
// T can be a fixed-size integer type or string.
type Vector[T any] []T

// Size returns the size of the receiver.
func (v Vector[T]) Size() int {
	return len(v)
}

// Copy copies the operand on the receiver, up to the
// smaller of the two sizes.
func (v Vector[T]) Copy(other Vector[T]) {
	copy(v, other)
}

// Clone returns a deep copy of the object.
func (v Vector[T]) Clone() (vcpy Vector[T]) {
	vcpy = Vector[T](make([]T, len(v)))
	copy(vcpy, v)
	return
}

// Equal returns true if the two vectors hold identical components.
func (v Vector[T]) Equal(other Vector[T]) bool {

	if len(v) != len(other) {
		return false
	}

	for i := range v {
		if any(v[i]) != any(other[i]) {
			return false
		}
	}

	return true
}

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {

	var t T
	switch any(t).(type) {
	case uint, uint64, int, int64:
		return 8 + len(v)*8
	case string:
		size = 8
		for i := range v {
			size += buffer.BytesSliceBinarySize([]byte(any(v[i]).(string)))
		}
		return
	default:
		panic(fmt.Errorf("vector component of type %T is not serializable", t))
	}
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	var inc int64

	if n, err = buffer.WriteAsUint64(w, len(v)); err != nil {
		return n, err
	}

	var t T
	switch any(t).(type) {
	case uint, uint64, int, int64:
		for i := range v {
			if inc, err = writeComponentAsUint64(w, v[i]); err != nil {
				return n + inc, err
			}
			n += inc
		}
	case string:
		for i := range v {
			if inc, err = buffer.WriteBytesSlice(w, []byte(any(v[i]).(string))); err != nil {
				return n + inc, err
			}
			n += inc
		}
	default:
		panic(fmt.Errorf("vector component of type %T is not serializable", t))
	}

	return n, nil
}

// ReadFrom reads the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {

	var size int
	if n, err = buffer.ReadAsUint64(r, &size); err != nil {
		return n, err
	}

	if len(*v) != size {
		*v = make([]T, size)
	}

	var inc int64

	var t T
	switch any(t).(type) {
	case uint, uint64, int, int64:
		for i := range *v {
			if inc, err = readComponentAsUint64(r, &(*v)[i]); err != nil {
				return n + inc, err
			}
			n += inc
		}
	case string:
		for i := range *v {
			var b []byte
			if inc, err = buffer.ReadBytesSlice(r, &b); err != nil {
				return n + inc, err
			}
			n += inc
			(*v)[i] = any(string(b)).(T)
		}
	default:
		panic(fmt.Errorf("vector component of type %T is not serializable", t))
	}

	return n, nil
}

func writeComponentAsUint64[T any](w io.Writer, c T) (n int64, err error) {
	switch c := any(c).(type) {
	case uint:
		return buffer.WriteAsUint64(w, c)
	case uint64:
		return buffer.WriteAsUint64(w, c)
	case int:
		return buffer.WriteAsUint64(w, c)
	case int64:
		return buffer.WriteAsUint64(w, c)
	default:
		panic(fmt.Errorf("component of type %T is not an integer", c))
	}
}

func readComponentAsUint64[T any](r io.Reader, c *T) (n int64, err error) {
	var u uint64
	if n, err = buffer.ReadAsUint64(r, &u); err != nil {
		return n, err
	}
	switch any(*c).(type) {
	case uint:
		*c = any(uint(u)).(T)
	case uint64:
		*c = any(u).(T)
	case int:
		*c = any(int(u)).(T)
	case int64:
		*c = any(int64(u)).(T)
	default:
		panic(fmt.Errorf("component of type %T is not an integer", *c))
	}
	return n, nil
}
