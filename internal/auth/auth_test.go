package auth

import (
	"errors"
	"testing"

	"github.com/usign/mortgage-prequal/internal/storage"
	"go.uber.org/zap"
)

func newTestManager() *Manager {
	return NewManager(zap.NewNop(), storage.NewMemoryStore(), 0)
}

func TestCreateAccountAndReadBack(t *testing.T) {
	m := newTestManager()

	if err := m.CreateAccount("maria@example.com", "555-0142"); err != nil {
		t.Fatalf("create account failed: %v", err)
	}

	account := m.Account()
	if account == nil {
		t.Fatal("expected stored account")
	}
	if account.Email != "maria@example.com" || account.Phone != "555-0142" {
		t.Errorf("got %+v, expected the created account", account)
	}
}

func TestVerifyCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"Any six digits accepted", "123456", false},
		{"Too short", "12345", true},
		{"Too long", "1234567", true},
		{"Non-digits rejected", "12a456", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager()
			if err := m.CreateAccount("maria@example.com", ""); err != nil {
				t.Fatalf("create account failed: %v", err)
			}

			err := m.VerifyCode(tt.code)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCode) {
					t.Errorf("expected ErrInvalidCode, got %v", err)
				}
				if m.IsAuthenticated() {
					t.Error("failed verification must not authenticate")
				}
				return
			}
			if err != nil {
				t.Fatalf("verify failed: %v", err)
			}
			if !m.IsAuthenticated() {
				t.Error("successful verification should authenticate")
			}
			if m.UserEmail() != "maria@example.com" {
				t.Errorf("user email = %q, expected the account email", m.UserEmail())
			}
		})
	}
}

func TestLogout(t *testing.T) {
	m := newTestManager()
	if err := m.CreateAccount("maria@example.com", ""); err != nil {
		t.Fatalf("create account failed: %v", err)
	}
	if err := m.Login("maria@example.com"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := m.Logout(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if m.IsAuthenticated() {
		t.Error("expected signed out after logout")
	}
	if m.UserEmail() != "" {
		t.Errorf("user email = %q, expected empty after logout", m.UserEmail())
	}
	if m.Account() != nil {
		t.Error("account record should be cleared on logout")
	}
}

func TestLanguagePreference(t *testing.T) {
	m := newTestManager()

	if got := m.Language(); got != "en" {
		t.Errorf("default language = %q, expected en", got)
	}
	if err := m.SetLanguage("es"); err != nil {
		t.Fatalf("set language failed: %v", err)
	}
	if got := m.Language(); got != "es" {
		t.Errorf("language = %q, expected es", got)
	}
}
