package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

func demoConfig() types.Config {
	return types.Config{Username: "librarian", Password: "lib123"}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "correct credentials", username: "librarian", password: "lib123"},
		{name: "wrong password", username: "librarian", password: "nope", wantErr: ErrBadCredentials},
		{name: "wrong username", username: "admin", password: "lib123", wantErr: ErrBadCredentials},
		{name: "empty credentials", username: "", password: "", wantErr: ErrBadCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configDir := t.TempDir()

			token, err := Login(demoConfig(), configDir, tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, err := os.Stat(filepath.Join(configDir, SessionFileName))
				assert.True(t, os.IsNotExist(err), "failed login must not write a session file")
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestLoginInvalidConfig(t *testing.T) {
	_, err := Login(types.Config{}, t.TempDir(), "librarian", "lib123")
	assert.ErrorIs(t, err, types.ErrUsernameEmpty)
}

func TestSessionRoundTrip(t *testing.T) {
	configDir := t.TempDir()

	token, err := Login(demoConfig(), configDir, "librarian", "lib123")
	require.NoError(t, err)

	current, err := Current(configDir)
	require.NoError(t, err)
	assert.Equal(t, token, current)
}

func TestSessionFilePermissions(t *testing.T) {
	configDir := t.TempDir()

	_, err := Login(demoConfig(), configDir, "librarian", "lib123")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(configDir, SessionFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCurrentWithoutSession(t *testing.T) {
	_, err := Current(t.TempDir())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCurrentRejectsGarbageToken(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, SessionFileName), []byte("not-a-token"), 0o600))

	_, err := Current(configDir)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLogout(t *testing.T) {
	configDir := t.TempDir()

	_, err := Login(demoConfig(), configDir, "librarian", "lib123")
	require.NoError(t, err)

	require.NoError(t, Logout(configDir))

	_, err = Current(configDir)
	assert.ErrorIs(t, err, ErrNoSession)

	// Logging out again succeeds.
	assert.NoError(t, Logout(configDir))
}
