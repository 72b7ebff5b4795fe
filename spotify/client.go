// Package spotify contains a small client for the Spotify Web API using
// the client credentials flow. The bearer token is refreshed on a fixed
// interval, independent of request traffic.
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultAuthURL = "https://accounts.spotify.com/api/token"
	defaultAPIURL  = "https://api.spotify.com/v1"

	// Spotify tokens live for 3600s, refresh a bit before that
	refreshEvery = 3400 * time.Second
)

type Client struct {
	HTTP    *http.Client
	AuthURL string
	APIURL  string

	clientID     string
	clientSecret string

	mu    sync.RWMutex
	token string
}

func New() *Client {
	return &Client{
		HTTP:         &http.Client{Timeout: 10 * time.Second},
		AuthURL:      defaultAuthURL,
		APIURL:       defaultAPIURL,
		clientID:     viper.GetString("spotify.client_id"),
		clientSecret: viper.GetString("spotify.client_secret"),
	}
}

// Start fetches the first access token and keeps refreshing it on a
// ticker until ctx is cancelled. Cancelling ctx is the teardown, there
// is no hidden global state left behind.
func (c *Client) Start(ctx context.Context) error {
	if err := c.refreshToken(ctx); err != nil {
		return fmt.Errorf("failed to fetch initial spotify token, %w", err)
	}

	ticker := time.NewTicker(refreshEvery)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := c.refreshToken(ctx); err != nil {
					zap.L().Error("Failed to refresh spotify token", zap.Error(err))
				}
			}
		}
	}()

	return nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *Client) refreshToken(ctx context.Context) error {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}

	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token endpoint returned %v", resp.Status)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return err
	}

	if tr.AccessToken == "" {
		return errors.New("token endpoint returned an empty token")
	}

	c.mu.Lock()
	c.token = tr.AccessToken
	c.mu.Unlock()

	zap.L().Debug("Spotify token refreshed", zap.Int("expires_in", tr.ExpiresIn))
	return nil
}

func (c *Client) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	token := c.accessToken()
	if token == "" {
		return errors.New("no access token available")
	}

	u := c.APIURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify returned %v for %v", resp.Status, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
