package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBlobValue(t *testing.T) {
	v, err := JSONBlob(`{"loops":[{"start":0,"end":12}]}`).Value()
	require.NoError(t, err)
	assert.Equal(t, `{"loops":[{"start":0,"end":12}]}`, v)

	v, err = JSONBlob(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = JSONBlob(`{broken`).Value()
	assert.Error(t, err)
}

func TestJSONBlobScan(t *testing.T) {
	var b JSONBlob

	require.NoError(t, b.Scan(`{"a":1}`))
	assert.Equal(t, JSONBlob(`{"a":1}`), b)

	require.NoError(t, b.Scan([]byte(`[1,2,3]`)))
	assert.Equal(t, JSONBlob(`[1,2,3]`), b)

	require.NoError(t, b.Scan(nil))
	assert.Nil(t, b)

	assert.Error(t, b.Scan(7))
}

func TestJSONBlobRoundTripsThroughJSON(t *testing.T) {
	type wrapper struct {
		Chords JSONBlob `json:"chords"`
	}

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"chords":{"Em":[0,2,2,0,0,0]}}`), &w))

	out, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"chords":{"Em":[0,2,2,0,0,0]}}`, string(out))

	out, err = json.Marshal(wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"chords":null}`, string(out))
}
