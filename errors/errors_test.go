package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("sentinel")

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("error 1")) //nolint:err113
		c.Add(errors.New("error 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Equal(t, 0, c.Len())
	})
}

func TestCollection_Addf(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Addf("%w: field %q", errSentinel, "name")

	err := c.GetError()
	require.ErrorIs(t, err, errSentinel)
	assert.Equal(t, `sentinel: field "name"`, err.Error())
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(errSentinel)
	c.Clear()

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		assert.NoError(t, c.GetError())
	})

	t.Run("returns single error", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errSentinel)

		assert.Equal(t, errSentinel, c.GetError())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		t.Parallel()

		other := errors.New("other") //nolint:err113

		c := &Collection{}
		c.Add(errSentinel)
		c.Add(other)

		err := c.GetError()
		require.ErrorIs(t, err, errSentinel)
		require.ErrorIs(t, err, other)
		assert.Equal(t, "sentinel\nother", err.Error())
	})
}
