package buffer

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("WriteReadAsUint64", func(t *testing.T) {

		buf := NewBufferSize(16)

		_, err := WriteAsUint64(buf, 0x1122334455667788)
		require.NoError(t, err)
		require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}, buf.Bytes())

		var have int
		_, err = ReadAsUint64(buf, &have)
		require.NoError(t, err)
		require.Equal(t, 0x1122334455667788, have)
	})

	t.Run("WriteReadBytesSlice", func(t *testing.T) {

		buf := NewBuffer(nil)

		want := []byte{1, 2, 3, 4, 5}

		n, err := WriteBytesSlice(buf, want)
		require.NoError(t, err)
		require.Equal(t, int64(BytesSliceBinarySize(want)), n)

		var have []byte
		n, err = ReadBytesSlice(buf, &have)
		require.NoError(t, err)
		require.Equal(t, int64(BytesSliceBinarySize(want)), n)
		require.Equal(t, want, have)
	})

	t.Run("ReadShort", func(t *testing.T) {
		var have uint64
		_, err := ReadAsUint64(bufio.NewReader(bytes.NewReader([]byte{1, 2})), &have)
		require.Error(t, err)
	})

	t.Run("CheckFlushed", func(t *testing.T) {
		require.NoError(t, CheckFlushed(8, 8))
		require.Error(t, CheckFlushed(7, 8))
	})
}
