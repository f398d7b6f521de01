package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CopiesValues(t *testing.T) {
	s := New()
	ctx := context.Background()

	value := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'x'

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", string(got))

	got[1] = 'y'
	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestStore_DeleteIgnoresMissing(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Delete(ctx, "a", "missing"))

	_, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}
