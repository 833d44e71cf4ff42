package authclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrInvalidToken indicates the auth backend rejected the token.
var ErrInvalidToken = errors.New("invalid or expired token")

// Verifier validates bearer tokens against the hosted auth backend.
type Verifier interface {
	Verify(ctx context.Context, token string) (User, error)
}

// User is the authenticated identity returned by the auth backend.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Client calls the auth backend's user endpoint with the bearer token.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new auth client. baseURL points at the hosted auth
// service; apiKey is the project-level key sent alongside user tokens.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify resolves a bearer token to a user via GET /auth/v1/user.
func (c *Client) Verify(ctx context.Context, token string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return User{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("failed to call auth backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return User{}, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return User{}, fmt.Errorf("auth backend error %d: %s", resp.StatusCode, string(raw))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return User{}, fmt.Errorf("failed to decode auth response: %w", err)
	}
	if user.ID == "" {
		return User{}, ErrInvalidToken
	}
	return user, nil
}
