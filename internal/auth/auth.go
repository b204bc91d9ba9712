// Package auth implements the librarian login gate. A successful login
// writes a session token file into the config directory; data commands
// check for it before touching the store. Sessions last until logout.
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// SessionFileName is the name of the token file inside the config directory.
const SessionFileName = "session"

var (
	ErrBadCredentials = errors.New("invalid username or password")
	ErrNoSession      = errors.New("not logged in")
)

// Login verifies the credential pair against cfg and, on success, writes a
// fresh session token (UUID v7) into configDir with owner-only permissions.
// Returns the token.
func Login(cfg types.Config, configDir, username, password string) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if username != cfg.Username || password != cfg.Password {
		return "", ErrBadCredentials
	}

	token, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	path := filepath.Join(configDir, SessionFileName)
	if err := os.WriteFile(path, []byte(token.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("writing session file: %w", err)
	}
	return token.String(), nil
}

// Current returns the active session token from configDir. Returns
// ErrNoSession if no session file exists or its content is not a valid
// token.
func Current(configDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(configDir, SessionFileName))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("reading session file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if _, err := uuid.Parse(token); err != nil {
		return "", ErrNoSession
	}
	return token, nil
}

// Logout removes the session file. Logging out with no active session
// succeeds.
func Logout(configDir string) error {
	err := os.Remove(filepath.Join(configDir, SessionFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
