package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errFirst  = errors.New("first")  //nolint:err113
	errSecond = errors.New("second") //nolint:err113
)

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("records non-nil errors", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(errFirst)
		c.Add(errSecond)

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(nil)
		c.Add(errFirst)
		c.Add(nil)

		assert.Equal(t, 1, c.Len())
	})
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("nil when empty", func(t *testing.T) {
		t.Parallel()

		var c Collection

		require.NoError(t, c.GetError())
		assert.False(t, c.HasError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(errFirst)

		assert.Same(t, errFirst, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(errFirst)
		c.Add(errSecond)

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, errFirst)
		require.ErrorIs(t, err, errSecond)
		assert.Equal(t, "first\nsecond", err.Error())
	})

	t.Run("clear resets", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(errFirst)
		c.Clear()

		require.NoError(t, c.GetError())
		assert.Equal(t, 0, c.Len())
	})
}
