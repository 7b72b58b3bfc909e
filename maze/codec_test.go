package maze

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {
	t.Run("Decode restores an encoded maze", func(t *testing.T) {
		m := Generate(Dimensions{Width: 7, Height: 5}, newRand(3))

		data, err := m.MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, data, headerSize+packedSize(m.Len()))

		decoded, err := Decode(data)
		require.NoError(t, err)
		assert.True(t, m.Equal(decoded))
	})

	t.Run("Bits are packed least significant first", func(t *testing.T) {
		m := New(Dimensions{Width: 1, Height: 1})
		m, err := m.Set(0, 0, Left, false)
		require.NoError(t, err)

		data, err := m.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 1, 0b1110}, data)
	})

	t.Run("Short payload", func(t *testing.T) {
		_, err := Decode([]byte{0, 0, 1})
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Zero dimensions", func(t *testing.T) {
		_, err := Decode(make([]byte, headerSize+1))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Oversized dimensions", func(t *testing.T) {
		data := make([]byte, headerSize)
		binary.BigEndian.PutUint32(data[0:4], maxEncodedDimension+1)
		binary.BigEndian.PutUint32(data[4:8], 1)
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Truncated walls", func(t *testing.T) {
		data, err := New(Dimensions{Width: 4, Height: 4}).MarshalBinary()
		require.NoError(t, err)
		_, err = Decode(data[:len(data)-1])
		assert.ErrorIs(t, err, ErrMalformed)
	})
}
