package authclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dayflow/pkg/authclient"
)

func TestVerify(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		switch r.Header.Get("Authorization") {
		case "Bearer good-token":
			w.Write([]byte(`{"id": "user-1", "email": "u@example.com"}`))
		case "Bearer empty-user":
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer ts.Close()

	client := authclient.NewClient(ts.URL, "anon-key")

	t.Run("valid token", func(t *testing.T) {
		user, err := client.Verify(context.Background(), "good-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "user-1" {
			t.Errorf("unexpected user id %q", user.ID)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		_, err := client.Verify(context.Background(), "bad-token")
		if !errors.Is(err, authclient.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("empty user body", func(t *testing.T) {
		_, err := client.Verify(context.Background(), "empty-user")
		if !errors.Is(err, authclient.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
