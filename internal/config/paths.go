package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoHome is returned when neither a config nor a home directory exists.
var ErrNoHome = errors.New("cannot determine config directory")

// DotDir returns ~/.orhub, the primary settings location.
func DotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", ErrNoHome
	}
	return filepath.Join(home, ".orhub"), nil
}

// Dir returns the orhub directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/orhub; on macOS
// to ~/Library/Application Support/orhub; and on Windows to %AppData%/orhub.
// It is only read as a fallback when DotDir holds no settings.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", ErrNoHome
		}
	}
	return filepath.Join(base, "orhub"), nil
}

// Path returns the settings file inside DotDir.
func Path() (string, error) {
	dir, err := DotDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

const fileName = "config.yaml"
