package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	// Session tokens last roughly a day; refresh a little early.
	tokenTTL     = 24 * time.Hour
	expiryBuffer = 5 * time.Minute
)

// TokenManager obtains Bahar session tokens from the ESSO login endpoint and
// caches them in a JSON file across runs.
type TokenManager struct {
	client    *http.Client
	essoURL   string
	username  string
	password  string
	tokenFile string

	mu sync.Mutex
}

type tokenRecord struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewTokenManager(client *http.Client, essoURL, username, password, tokenFile string) *TokenManager {
	return &TokenManager{
		client:    client,
		essoURL:   essoURL,
		username:  username,
		password:  password,
		tokenFile: tokenFile,
	}
}

// Token returns a valid session token, reusing the cached one while it has
// not expired and fetching a fresh one otherwise.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token := m.loadCached(); token != "" {
		return token, nil
	}
	return m.refresh(ctx)
}

// Clear removes the cached token file.
func (m *TokenManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.Remove(m.tokenFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[auth] clear token: %v", err)
	}
}

func (m *TokenManager) loadCached() string {
	content, err := os.ReadFile(m.tokenFile)
	if err != nil {
		return ""
	}

	var record tokenRecord
	if err := json.Unmarshal(content, &record); err != nil {
		log.Printf("[auth] invalid token file, refetching: %v", err)
		return ""
	}
	if record.Token == "" || time.Now().After(record.ExpiresAt.Add(-expiryBuffer)) {
		return ""
	}

	log.Printf("[auth] reusing cached token (expires %s)", record.ExpiresAt.Format(time.RFC3339))
	return record.Token
}

func (m *TokenManager) refresh(ctx context.Context) (string, error) {
	if m.username == "" || m.password == "" {
		return "", errors.New("missing credentials")
	}

	log.Printf("[auth] fetching fresh token from ESSO")

	payload := map[string]string{
		"email":    m.username,
		"password": m.password,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, m.essoURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("esso login failed: status %d", resp.StatusCode)
	}

	token := sidFromCookies(resp.Cookies())
	if token == "" {
		return "", errors.New("no SID cookie in esso response")
	}

	record := tokenRecord{
		Token:     token,
		Username:  m.username,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(tokenTTL - expiryBuffer),
	}
	m.save(record)

	log.Printf("[auth] fresh token obtained (expires %s)", record.ExpiresAt.Format(time.RFC3339))
	return token, nil
}

func (m *TokenManager) save(record tokenRecord) {
	content, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		log.Printf("[auth] marshal token: %v", err)
		return
	}
	if err := os.WriteFile(m.tokenFile, content, 0o600); err != nil {
		log.Printf("[auth] save token: %v", err)
	}
}

func sidFromCookies(cookies []*http.Cookie) string {
	for _, cookie := range cookies {
		if strings.EqualFold(cookie.Name, "SID") && cookie.Value != "" {
			return cookie.Value
		}
	}
	return ""
}
