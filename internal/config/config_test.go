package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ".spotlaunch"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_FromScriptFolder(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "version: 1\napp: other_gui.py\ntimeout: 10s\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.AppFile() != "other_gui.py" {
		t.Errorf("AppFile = %q, want %q", cfg.AppFile(), "other_gui.py")
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout())
	}
}

func TestLoad_NoFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppFile() != DefaultApp {
		t.Errorf("AppFile = %q, want default %q", cfg.AppFile(), DefaultApp)
	}
	if cfg.GUIModuleName() != DefaultGUIModule {
		t.Errorf("GUIModuleName = %q, want %q", cfg.GUIModuleName(), DefaultGUIModule)
	}
	if cfg.Timeout() != DefaultTimeout {
		t.Errorf("Timeout = %v, want default %v", cfg.Timeout(), DefaultTimeout)
	}
	if cfg.HistoryKeep() != DefaultKeep {
		t.Errorf("HistoryKeep = %d, want %d", cfg.HistoryKeep(), DefaultKeep)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "app: [unterminated\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestCandidates_Configured(t *testing.T) {
	cfg := &Config{Interpreter: InterpreterConfig{Candidates: []string{"py -3.11", "python3"}}}

	got := cfg.Candidates()
	if len(got) != 2 {
		t.Fatalf("Candidates = %v, want 2 entries", got)
	}
	if got[0][0] != "py" || got[0][1] != "-3.11" {
		t.Errorf("got[0] = %v, want [py -3.11]", got[0])
	}
	if len(got[1]) != 1 || got[1][0] != "python3" {
		t.Errorf("got[1] = %v, want [python3]", got[1])
	}
}

func TestCandidates_Default(t *testing.T) {
	cfg := &Config{}

	got := cfg.Candidates()
	if len(got) != 2 {
		t.Fatalf("Candidates = %v, want 2 entries", got)
	}
	// The last entry is always the generic fallback.
	last := got[len(got)-1]
	if len(last) != 1 {
		t.Errorf("fallback = %v, want a bare command name", last)
	}
}

func TestCandidates_BlankEntriesIgnored(t *testing.T) {
	cfg := &Config{Interpreter: InterpreterConfig{Candidates: []string{"  ", ""}}}

	got := cfg.Candidates()
	if len(got) != len(DefaultCandidates()) {
		t.Errorf("Candidates = %v, want platform defaults", got)
	}
}

func TestTimeout_Invalid(t *testing.T) {
	cfg := &Config{RawTimeout: "not-a-duration"}
	if cfg.Timeout() != DefaultTimeout {
		t.Errorf("Timeout = %v, want default for invalid input", cfg.Timeout())
	}
}

func TestMinVersion_Default(t *testing.T) {
	cfg := &Config{}
	if cfg.MinVersion() != DefaultMinPython {
		t.Errorf("MinVersion = %q, want %q", cfg.MinVersion(), DefaultMinPython)
	}
}
