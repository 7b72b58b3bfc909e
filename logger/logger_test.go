package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Nil writer", func(t *testing.T) {
		_, err := New("APP", ColorGreen, nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})

	t.Run("Levels are tagged", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("EDITOR", ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("wall toggled")
		l.Warning("cache refill failed")
		l.Error("save failed")

		out := buf.String()
		assert.Contains(t, out, ColorCyan+"[EDITOR]"+ColorReset)
		assert.Contains(t, out, "[INFO]"+ColorReset+" wall toggled")
		assert.Contains(t, out, "[WARNING]"+ColorReset+" cache refill failed")
		assert.Contains(t, out, "[ERROR]"+ColorReset+" save failed")
	})
}
