// Package auth provides the local identity collaborator: who the current
// user is, sign-in gated by a domain allow-list, and change notification.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultDomains is the sign-in allow-list used when none is configured.
var DefaultDomains = []string{"innovate-design.co.uk", "innovate-design.com"}

// Identity exposes the authenticated-user signals consumed by the rest of
// the application. Documents are keyed by the user id it reports.
type Identity interface {
	// CurrentUser returns the signed-in user id, or ok=false.
	CurrentUser() (string, bool)
	// OnChange registers a callback invoked with the new user id on
	// sign-in and with "" on sign-out.
	OnChange(fn func(user string))
}

const identityFile = ".identity.json"

// Manager is a file-backed Identity. The signed-in user is recorded under
// the store's base path so all commands agree on whose documents to open.
type Manager struct {
	path    string
	domains []string

	mu        sync.Mutex
	user      string
	callbacks []func(string)
}

// NewManager loads the identity state below basePath. An unreadable or
// missing identity file means "signed out".
func NewManager(basePath string, domains []string) (*Manager, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("auth: base path required")
	}
	if len(domains) == 0 {
		domains = DefaultDomains
	}
	m := &Manager{
		path:    filepath.Join(basePath, identityFile),
		domains: domains,
	}
	if data, err := os.ReadFile(m.path); err == nil {
		var rec struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(data, &rec); err == nil {
			m.user = strings.ToLower(strings.TrimSpace(rec.Email))
		}
	}
	return m, nil
}

func (m *Manager) CurrentUser() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user, m.user != ""
}

func (m *Manager) OnChange(fn func(user string)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.callbacks = append(m.callbacks, fn)
	m.mu.Unlock()
}

// SignIn records email as the current user after checking the allow-list.
func (m *Manager) SignIn(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := m.checkDomain(email); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("auth: ensure base path: %w", err)
	}
	data, err := json.Marshal(struct {
		Email string `json:"email"`
	}{Email: email})
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("auth: save identity: %w", err)
	}
	m.setUser(email)
	return nil
}

// SignOut clears the recorded identity.
func (m *Manager) SignOut() error {
	if err := os.Remove(m.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("auth: clear identity: %w", err)
	}
	m.setUser("")
	return nil
}

func (m *Manager) checkDomain(email string) error {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("auth: %q is not an email address", email)
	}
	domain := email[at+1:]
	for _, allowed := range m.domains {
		if strings.EqualFold(domain, allowed) {
			return nil
		}
	}
	return fmt.Errorf("auth: only %s emails are allowed", strings.Join(m.domains, ", "))
}

func (m *Manager) setUser(user string) {
	m.mu.Lock()
	m.user = user
	callbacks := append(([]func(string))(nil), m.callbacks...)
	m.mu.Unlock()
	for _, fn := range callbacks {
		fn(user)
	}
}
