package buffer

import (
	"bufio"
	"bytes"
	"encoding"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// Serializer is the interface implemented by objects supporting the
// BinarySize/WriteTo/ReadFrom serialization contract.
type Serializer interface {
	io.WriterTo
	io.ReaderFrom
	BinarySize() int
}

// RequireSerializerCorrect checks that the WriteTo/ReadFrom/BinarySize and,
// when implemented, the MarshalBinary/UnmarshalBinary contracts of in are
// consistent: exactly BinarySize() bytes are produced, and reading them back
// into out yields the bytes of in.
func RequireSerializerCorrect(t *testing.T, in, out Serializer) {

	buf := new(bytes.Buffer)
	w := bufio.NewWriter(buf)

	n, err := in.WriteTo(w)
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	require.Equal(t, int64(in.BinarySize()), n)
	require.Equal(t, in.BinarySize(), buf.Len())

	data := make([]byte, buf.Len())
	copy(data, buf.Bytes())

	n, err = out.ReadFrom(bufio.NewReader(buf))
	require.NoError(t, err)
	require.Equal(t, int64(in.BinarySize()), n)

	buf.Reset()
	w = bufio.NewWriter(buf)
	_, err = out.WriteTo(w)
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	require.Equal(t, data, buf.Bytes())

	if m, ok := in.(encoding.BinaryMarshaler); ok {
		p, err := m.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, data, p)

		if u, ok := out.(encoding.BinaryUnmarshaler); ok {
			require.NoError(t, u.UnmarshalBinary(p))
		}
	}
}
