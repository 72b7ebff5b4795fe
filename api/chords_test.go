package api

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChordsServesCatalog(t *testing.T) {
	a, _ := newTestAPI(t)

	path := filepath.Join(t.TempDir(), "chords.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Em":{"frets":[0,2,2,0,0,0]}}`), 0o644))
	viper.Set("chords.path", path)

	w := doJSON(t, a, http.MethodGet, "/api/chords", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"Em":{"frets":[0,2,2,0,0,0]}}`, w.Body.String())
}
