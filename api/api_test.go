package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"remaster/api/model"
	"remaster/api/pkg/security"
	"remaster/api/spotify"
	"remaster/api/store"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type sentMail struct {
	To      string
	Subject string
	HTML    string
}

// mailRecorder stands in for the SMTP mailer. Sends are recorded
// synchronously so tests can assert on them right away.
type mailRecorder struct {
	mu    sync.Mutex
	mails []sentMail
}

func (m *mailRecorder) SendAsync(to, subject, html string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mails = append(m.mails, sentMail{To: to, Subject: subject, HTML: html})
}

func (m *mailRecorder) all() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.mails...)
}

var linkToken = regexp.MustCompile(`/([0-9a-f]+)"`)

func (m *mailRecorder) lastToken(t *testing.T) string {
	t.Helper()

	mails := m.all()
	require.NotEmpty(t, mails)

	match := linkToken.FindStringSubmatch(mails[len(mails)-1].HTML)
	require.Len(t, match, 2, "mail body holds no token link")
	return match[1]
}

func newTestAPI(t *testing.T) (*API, *mailRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	viper.Set("session.cookie_name", "qid")
	viper.Set("session.max_age", 3600)
	viper.Set("host.ssl_enabled", false)
	viper.Set("host.domain", "localhost:3000")
	viper.Set("host.cors_origins", []string{"http://localhost:3000"})
	viper.Set("ratelimit.rps", 10000)
	viper.Set("ratelimit.burst", 10000)

	// A named shared-cache db keeps every pooled connection on the same
	// in-memory database
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(model.User{}, model.Remaster{}))

	mails := &mailRecorder{}

	a := &API{
		DB:       database,
		Argon:    security.New(),
		Sessions: store.NewMemorySessions(time.Hour),
		Tokens:   store.NewMemoryTokens(),
		Mailer:   mails,
		Spotify:  spotify.New(),
	}
	a.setupRoutes()

	return a, mails
}

func doJSON(t *testing.T, a *API, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "qid" && cookie.Value != "" {
			return cookie
		}
	}

	t.Fatal("no session cookie in response")
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// register creates an account and hands back the session cookie.
func register(t *testing.T, a *API, email, username, password string) *http.Cookie {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/api/register", gin.H{
		"email":    email,
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return sessionCookie(t, w)
}

func fieldErrorOf(t *testing.T, w *httptest.ResponseRecorder) FieldError {
	t.Helper()

	var body struct {
		Errors []FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	return body.Errors[0]
}
