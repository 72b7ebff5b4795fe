package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSliceValue(t *testing.T) {
	v, err := StringSlice{"E", "A", "D", "G", "B", "E"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "E,A,D,G,B,E", v)

	v, err = StringSlice{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "", v)

	_, err = StringSlice{"D,A"}.Value()
	assert.Error(t, err)
}

func TestStringSliceScan(t *testing.T) {
	var s StringSlice

	require.NoError(t, s.Scan("D,A,D,G,B,E"))
	assert.Equal(t, StringSlice{"D", "A", "D", "G", "B", "E"}, s)

	require.NoError(t, s.Scan(""))
	assert.Empty(t, s)

	require.NoError(t, s.Scan(nil))
	assert.Empty(t, s)

	require.NoError(t, s.Scan([]byte("E,B")))
	assert.Equal(t, StringSlice{"E", "B"}, s)

	assert.Error(t, s.Scan(42))
}
