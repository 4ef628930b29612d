package tool

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveHomeDirPrecedence(t *testing.T) {
	t.Setenv("HOMEDIR", "/srv/deck-home")
	t.Setenv("HOME", "/home/deck")

	dir, err := ResolveHomeDir("/override")
	if err != nil || dir != "/override" {
		t.Errorf("Expected override to win, got %q (%v)", dir, err)
	}

	dir, err = ResolveHomeDir("")
	if err != nil || dir != "/srv/deck-home" {
		t.Errorf("Expected HOMEDIR, got %q (%v)", dir, err)
	}

	t.Setenv("HOMEDIR", "   ")
	dir, err = ResolveHomeDir("")
	if err != nil || dir != "/home/deck" {
		t.Errorf("Expected blank HOMEDIR to fall through to HOME, got %q (%v)", dir, err)
	}
}

func TestResolveHomeDirUnset(t *testing.T) {
	t.Setenv("HOMEDIR", "")
	t.Setenv("HOME", "")
	if _, err := ResolveHomeDir(""); err == nil {
		t.Error("Expected error when no home directory resolves")
	}
}

func TestResolveCacheDirDefault(t *testing.T) {
	t.Setenv("CACHEDIR", "")
	home := t.TempDir()

	dir, err := ResolveCacheDir("", home)
	if err != nil {
		t.Fatalf("ResolveCacheDir failed: %v", err)
	}
	want := filepath.Join(home, ".cache", "sharess")
	if dir != want {
		t.Errorf("Expected %q, got %q", want, dir)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("Cache directory should have been created: %v", err)
	}
}

func TestResolveCacheDirEnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom-cache")
	t.Setenv("CACHEDIR", custom)

	dir, err := ResolveCacheDir("", "/unused")
	if err != nil {
		t.Fatalf("ResolveCacheDir failed: %v", err)
	}
	if dir != custom {
		t.Errorf("Expected %q, got %q", custom, dir)
	}
}
