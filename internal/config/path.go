package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configFileName = "config.toml"

// Path resolves the config directory and file path using XDG rules, with a
// MDCOPMINER_HOME override and a ~/.config/mdcopminer fallback, the same
// precedence internal/configstore/path.go applies for LEASH_HOME.
func Path() (dir, file string, err error) {
	if override := strings.TrimSpace(os.Getenv("MDCOPMINER_HOME")); override != "" {
		dir := filepath.Clean(override)
		if !filepath.IsAbs(dir) {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return "", "", fmt.Errorf("resolve MDCOPMINER_HOME %q: %w", override, err)
			}
			dir = abs
		}
		return dir, filepath.Join(dir, configFileName), nil
	}

	base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if base != "" {
		dir := filepath.Join(base, "mdcopminer")
		return dir, filepath.Join(dir, configFileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		if err == nil {
			err = fmt.Errorf("home directory not found")
		}
		return "", "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir = filepath.Join(home, ".config", "mdcopminer")
	return dir, filepath.Join(dir, configFileName), nil
}
