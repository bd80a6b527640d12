package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Players != 3 {
		t.Errorf("default players = %d, want 3", cfg.Players)
	}
	if cfg.WinPoints != 10 {
		t.Errorf("default win points = %d, want 10", cfg.WinPoints)
	}
	if cfg.Window.Width != 1200 || cfg.Window.Height != 900 {
		t.Errorf("default window = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexfield.yaml")
	body := "players: 4\nnames:\n  - \"  Ada \"\n  - Grace\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Players != 4 {
		t.Errorf("players = %d, want 4", cfg.Players)
	}
	if cfg.Names[0] != "Ada" || cfg.Names[1] != "Grace" {
		t.Errorf("names not trimmed: %q", cfg.Names)
	}
	if cfg.WinPoints != 10 || cfg.SaveDir != "saves" {
		t.Errorf("unset fields not defaulted: %+v", cfg)
	}

	sc := cfg.Session()
	if sc.PlayerCount != 4 || len(sc.PlayerNames) != 2 {
		t.Errorf("session config mismatch: %+v", sc)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"too many players": "players: 9\n",
		"extra names":      "players: 2\nnames: [a, b, c]\n",
		"tiny window":      "window:\n  width: 100\n  height: 100\n",
		"not yaml":         "players: [\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "hexfield.yaml")
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
