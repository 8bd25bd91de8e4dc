package browser

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"
)

// Config holds browser settings.
type Config struct {
	Headless          bool
	ViewportWidth     int
	ViewportHeight    int
	NavigationTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Headless:          true,
		ViewportWidth:     1920,
		ViewportHeight:    1080,
		NavigationTimeout: 30 * time.Second,
	}
}

// Session is the public metadata of one tracked page.
type Session struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

type sessionRecord struct {
	meta Session
	page *rod.Page
}

// Manager owns the Chrome instance and tracks open pages.
type Manager struct {
	cfg Config

	mu       sync.Mutex
	browser  *rod.Browser
	sessions map[string]*sessionRecord
}

func NewManager(cfg Config) *Manager {
	return &Manager{cfg: cfg, sessions: map[string]*sessionRecord{}}
}

// Start launches Chrome and connects to it. Safe to call more than once.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.browser != nil {
		if _, err := m.browser.Version(); err == nil {
			return nil
		}
		log.Printf("[browser] stale connection, relaunching")
		_ = m.browser.Close()
		m.browser = nil
		m.sessions = map[string]*sessionRecord{}
	}

	controlURL, err := launcher.New().Headless(m.cfg.Headless).Launch()
	if err != nil {
		return fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect to chrome: %w", err)
	}

	m.browser = browser
	log.Printf("[browser] connected (headless=%v)", m.cfg.Headless)
	return nil
}

// OpenPage creates a tracked page navigated to url.
func (m *Manager) OpenPage(ctx context.Context, url string) (*rod.Page, string, error) {
	if err := m.Start(ctx); err != nil {
		return nil, "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.browser == nil {
		return nil, "", errors.New("browser not connected")
	}

	page, err := m.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, "", fmt.Errorf("create page: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             m.cfg.ViewportWidth,
		Height:            m.cfg.ViewportHeight,
		DeviceScaleFactor: 1.0,
	}); err != nil {
		_ = page.Close()
		return nil, "", fmt.Errorf("set viewport: %w", err)
	}

	id := uuid.NewString()
	now := time.Now()
	m.sessions[id] = &sessionRecord{
		meta: Session{ID: id, URL: url, CreatedAt: now, LastActive: now},
		page: page,
	}

	return page.Timeout(m.cfg.NavigationTimeout), id, nil
}

// Touch refreshes a session's last-active timestamp and current URL.
func (m *Manager) Touch(id, url string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.sessions[id]
	if !ok {
		return
	}
	record.meta.LastActive = time.Now()
	if url != "" {
		record.meta.URL = url
	}
}

// ClosePage closes a tracked page and forgets its session.
func (m *Manager) ClosePage(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.sessions[id]
	if !ok {
		return
	}
	if record.page != nil {
		_ = record.page.Close()
	}
	delete(m.sessions, id)
}

// Sessions lists metadata for every open page.
func (m *Manager) Sessions() []Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Session, 0, len(m.sessions))
	for _, record := range m.sessions {
		out = append(out, record.meta)
	}
	return out
}

// Shutdown closes every page and the browser itself.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, record := range m.sessions {
		if record.page != nil {
			_ = record.page.Close()
		}
		delete(m.sessions, id)
	}

	var err error
	if m.browser != nil {
		err = m.browser.Close()
		m.browser = nil
	}
	return err
}
