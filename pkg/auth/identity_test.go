package auth

import (
	"testing"
)

func TestSignInRespectsAllowList(t *testing.T) {
	m, err := NewManager(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	if _, ok := m.CurrentUser(); ok {
		t.Fatalf("fresh manager should be signed out")
	}

	if err := m.SignIn("dev@example.com"); err == nil {
		t.Fatalf("expected rejection for non-allow-listed domain")
	}
	if err := m.SignIn("not-an-email"); err == nil {
		t.Fatalf("expected rejection for malformed address")
	}

	if err := m.SignIn("Dev@Innovate-Design.CO.UK"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	user, ok := m.CurrentUser()
	if !ok || user != "dev@innovate-design.co.uk" {
		t.Fatalf("expected normalized user, got %q ok=%v", user, ok)
	}
}

func TestIdentityPersistsAcrossManagers(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, []string{"corp.test"})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if err := m.SignIn("pm@corp.test"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	again, err := NewManager(dir, []string{"corp.test"})
	if err != nil {
		t.Fatalf("reload manager: %v", err)
	}
	user, ok := again.CurrentUser()
	if !ok || user != "pm@corp.test" {
		t.Fatalf("expected persisted identity, got %q ok=%v", user, ok)
	}

	if err := again.SignOut(); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, ok := again.CurrentUser(); ok {
		t.Fatalf("expected signed out state")
	}
}

func TestOnChangeCallbacks(t *testing.T) {
	m, err := NewManager(t.TempDir(), []string{"corp.test"})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	var seen []string
	m.OnChange(func(user string) { seen = append(seen, user) })

	if err := m.SignIn("a@corp.test"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := m.SignOut(); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if len(seen) != 2 || seen[0] != "a@corp.test" || seen[1] != "" {
		t.Fatalf("unexpected callback sequence %v", seen)
	}
}
