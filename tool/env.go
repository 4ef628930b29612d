package tool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// isBlankEnv reports whether an environment value is unset or whitespace only.
func isBlankEnv(value string) bool {
	return strings.TrimSpace(value) == ""
}

// ResolveHomeDir resolves the user's home directory: explicit override first,
// then HOMEDIR, then HOME. Failing to resolve one is a fatal startup condition
// for the caller.
func ResolveHomeDir(override string) (string, error) {
	candidates := []string{override, os.Getenv("HOMEDIR"), os.Getenv("HOME")}
	for _, dir := range candidates {
		if !isBlankEnv(dir) {
			return strings.TrimSpace(dir), nil
		}
	}
	return "", fmt.Errorf("HOME not defined")
}

// ResolveCacheDir resolves the cache directory (override, then CACHEDIR, then
// ~/.cache/sharess) and creates it when missing.
func ResolveCacheDir(override, homeDir string) (string, error) {
	dir := override
	if isBlankEnv(dir) {
		dir = os.Getenv("CACHEDIR")
	}
	if isBlankEnv(dir) {
		dir = filepath.Join(homeDir, ".cache", "sharess")
	}
	dir = strings.TrimSpace(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache directory %s: %v", dir, err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("CACHEDIR not found: %s", dir)
	}
	return dir, nil
}
