package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"remaster/api/store"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateRouter(t *testing.T, sessions store.SessionStore) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("session.cookie_name", "qid")

	r := gin.New()
	r.Use(NewRequestIDMiddleware(), NewSessionMiddleware(sessions))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.MustGet("userID")})
	})

	return r
}

func TestSessionGateRejectsMissingCookie(t *testing.T) {
	r := newGateRouter(t, store.NewMemorySessions(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not authenticated")
}

func TestSessionGateRejectsUnknownSession(t *testing.T) {
	r := newGateRouter(t, store.NewMemorySessions(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "qid", Value: "nope"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionGatePassesValidSession(t *testing.T) {
	sessions := store.NewMemorySessions(time.Hour)
	r := newGateRouter(t, sessions)

	sid, err := sessions.Create(context.Background(), 7)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "qid", Value: sid})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":7`)
}
