package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTokenFetchesAndCaches(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload["email"] != "user@example.com" {
			t.Errorf("unexpected email %q", payload["email"])
		}
		http.SetCookie(w, &http.Cookie{Name: "SID", Value: "abc123"})
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	tokenFile := filepath.Join(t.TempDir(), "token.json")
	manager := NewTokenManager(server.Client(), server.URL, "user@example.com", "secret", tokenFile)

	token, err := manager.Token(context.Background())
	if err != nil {
		t.Fatalf("first Token: %v", err)
	}
	if token != "abc123" {
		t.Fatalf("token = %q", token)
	}

	// Second call must come from the cache file.
	token, err = manager.Token(context.Background())
	if err != nil {
		t.Fatalf("second Token: %v", err)
	}
	if token != "abc123" || calls != 1 {
		t.Fatalf("expected cached token, got %q after %d calls", token, calls)
	}
}

func TestTokenRefreshesExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "SID", Value: "fresh"})
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	tokenFile := filepath.Join(t.TempDir(), "token.json")
	stale := tokenRecord{
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	content, _ := json.Marshal(stale)
	if err := os.WriteFile(tokenFile, content, 0o600); err != nil {
		t.Fatal(err)
	}

	manager := NewTokenManager(server.Client(), server.URL, "u", "p", tokenFile)
	token, err := manager.Token(context.Background())
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if token != "fresh" {
		t.Fatalf("expected refreshed token, got %q", token)
	}
}

func TestTokenMissingCredentials(t *testing.T) {
	manager := NewTokenManager(http.DefaultClient, "http://unused", "", "", filepath.Join(t.TempDir(), "t.json"))
	if _, err := manager.Token(context.Background()); err == nil {
		t.Fatal("expected error without credentials")
	}
}

func TestTokenNoSIDCookie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	manager := NewTokenManager(server.Client(), server.URL, "u", "p", filepath.Join(t.TempDir(), "t.json"))
	if _, err := manager.Token(context.Background()); err == nil {
		t.Fatal("expected error when SID cookie is absent")
	}
}
