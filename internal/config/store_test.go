package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreLoadMissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "phpfix.toml"))

	settings, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if settings.Rules != DefaultSettings().Rules {
		t.Errorf("defaults not applied: %v", settings.Rules)
	}
}

func TestStoreRoundTripTOML(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "phpfix.toml"))

	in := DefaultSettings()
	in.Executable = "/usr/bin/php-cs-fixer"
	in.AllowRisky = true
	in.Exclude = []string{"**/vendor/**"}
	in.LastDownload = 1725000000

	if err := store.Save(in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if out.Executable != in.Executable {
		t.Errorf("executable: got %q", out.Executable)
	}
	if !out.AllowRisky {
		t.Error("allowRisky lost")
	}
	if len(out.Exclude) != 1 || out.Exclude[0] != "**/vendor/**" {
		t.Errorf("exclude: got %v", out.Exclude)
	}
	if out.LastDownload != in.LastDownload {
		t.Errorf("lastDownload: got %d", out.LastDownload)
	}
}

func TestStoreRoundTripYAML(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "phpfix.yaml"))

	in := DefaultSettings()
	in.AutoFixBySemicolon = true

	if err := store.Save(in); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	out, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !out.AutoFixBySemicolon {
		t.Error("autoFixBySemicolon lost in yaml round trip")
	}
}

func TestStoreLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phpfix.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewStore(path).Load()
	if err == nil {
		t.Fatal("expected parse error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected *ParseError, got %T", err)
	}
}
