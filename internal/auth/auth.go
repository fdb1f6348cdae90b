// Package auth implements the local-only authentication stub: account
// creation, email verification, and a session flag, all persisted in the
// keyed store. It simulates the latency of a real backend but performs no
// real verification; any 6-digit code is accepted.
package auth

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/usign/mortgage-prequal/internal/storage"
	"github.com/usign/mortgage-prequal/pkg/constants"
	"go.uber.org/zap"
)

// ErrInvalidCode is returned when a verification code is not six digits.
var ErrInvalidCode = errors.New("auth: invalid verification code")

// Account is the record written at account-creation time and read back by
// the email-verification screen.
type Account struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Manager drives the auth stub against the keyed store.
type Manager struct {
	kv     storage.KV
	logger *zap.Logger
	// delay stands in for the round trip of a real API call.
	delay time.Duration
}

// NewManager creates an auth manager. A zero delay disables the simulated
// latency, which tests rely on.
func NewManager(logger *zap.Logger, kv storage.KV, delay time.Duration) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{kv: kv, logger: logger, delay: delay}
}

func (m *Manager) simulateNetwork() {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
}

// CreateAccount persists the account record and "sends" a verification code.
func (m *Manager) CreateAccount(email, phone string) error {
	m.simulateNetwork()

	raw, err := json.Marshal(Account{Email: email, Phone: phone})
	if err != nil {
		return err
	}
	if err := m.kv.Set(constants.StorageKeyAccount, raw); err != nil {
		return err
	}

	m.logger.Info("verification code sent",
		zap.String("op", "auth.CreateAccount"),
		zap.String("email", email),
	)
	return nil
}

// Account returns the stored account record, or nil when none exists or the
// stored record is unreadable.
func (m *Manager) Account() *Account {
	raw, err := m.kv.Get(constants.StorageKeyAccount)
	if err != nil {
		return nil
	}
	var account Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil
	}
	return &account
}

// VerifyCode accepts any 6-digit code and signs the account's email in.
func (m *Manager) VerifyCode(code string) error {
	m.simulateNetwork()

	if len(code) != 6 {
		return ErrInvalidCode
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return ErrInvalidCode
		}
	}

	email := ""
	if account := m.Account(); account != nil {
		email = account.Email
	}
	return m.Login(email)
}

// Login marks the session authenticated for the given email.
func (m *Manager) Login(email string) error {
	if err := m.kv.Set(constants.StorageKeyAuthenticated, []byte("true")); err != nil {
		return err
	}
	return m.kv.Set(constants.StorageKeyUserEmail, []byte(email))
}

// Logout clears the session flags and the account record.
func (m *Manager) Logout() error {
	for _, key := range []string{
		constants.StorageKeyAuthenticated,
		constants.StorageKeyUserEmail,
		constants.StorageKeyAccount,
	} {
		if err := m.kv.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// IsAuthenticated reports whether the session flag is set.
func (m *Manager) IsAuthenticated() bool {
	raw, err := m.kv.Get(constants.StorageKeyAuthenticated)
	return err == nil && string(raw) == "true"
}

// UserEmail returns the signed-in email, or empty when signed out.
func (m *Manager) UserEmail() string {
	raw, err := m.kv.Get(constants.StorageKeyUserEmail)
	if err != nil {
		return ""
	}
	return string(raw)
}

// SetLanguage persists the language preference for the UI.
func (m *Manager) SetLanguage(code string) error {
	return m.kv.Set(constants.StorageKeyLanguage, []byte(code))
}

// Language returns the persisted language preference, defaulting to "en".
func (m *Manager) Language() string {
	raw, err := m.kv.Get(constants.StorageKeyLanguage)
	if err != nil || len(raw) == 0 {
		return "en"
	}
	return string(raw)
}
