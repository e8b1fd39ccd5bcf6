package sessiontest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	assert.Nil(t, m.Get("k"))

	m.Set("k", int64(7))
	assert.Equal(t, int64(7), m.Get("k"))
	require.NoError(t, m.Save())

	m.Delete("k")
	assert.Nil(t, m.Get("k"))
	require.NoError(t, m.Save())
	assert.Equal(t, 2, m.Saves())
}
