// Package paths resolves the configuration directory and the store file
// location for the stacks CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultStoreFileName is the CWD-relative default store document name.
const DefaultStoreFileName = "books.json"

// Environment variable names for overrides.
const (
	EnvConfigDir = "STACKS_CONFIG_DIR"
	EnvStorePath = "STACKS_STORE_PATH"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/stacks (fallback ~/.config/stacks)
// macOS:   ~/Library/Application Support/stacks
// Windows: %APPDATA%/stacks
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "stacks"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "stacks"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "stacks"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > STACKS_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveStorePath returns the store document path following the precedence
// chain: flag > config.yaml store_path > STACKS_STORE_PATH env > the
// CWD-relative default $(CWD)/books.json.
func ResolveStorePath(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvStorePath); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultStoreFileName), nil
}
