package interp

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// stubBinary drops an executable file named name into dir.
func stubBinary(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestResolve_PreferredPresent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH stub fixtures are POSIX scripts")
	}
	dir := t.TempDir()
	stubBinary(t, dir, "py")
	stubBinary(t, dir, "python")
	t.Setenv("PATH", dir)

	it := Resolve([][]string{{"py", "-3"}, {"python"}})
	if it.String() != "py -3" {
		t.Errorf("invocation = %q, want %q", it.String(), "py -3")
	}
	if it.Path == "" {
		t.Error("Path is empty, want probed binary path")
	}
}

func TestResolve_FallbackWhenPreferredAbsent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH stub fixtures are POSIX scripts")
	}
	dir := t.TempDir()
	stubBinary(t, dir, "python")
	t.Setenv("PATH", dir)

	it := Resolve([][]string{{"py", "-3"}, {"python"}})
	if it.String() != "python" {
		t.Errorf("invocation = %q, want %q", it.String(), "python")
	}
}

func TestResolve_NothingOnPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	// The fallback is still chosen; its absence surfaces only when run.
	it := Resolve([][]string{{"py", "-3"}, {"python"}})
	if it.String() != "python" {
		t.Errorf("invocation = %q, want fallback %q", it.String(), "python")
	}
	if it.Path != "" {
		t.Errorf("Path = %q, want empty for an unprobed fallback", it.Path)
	}
}

func TestFind_NothingOnPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Find([][]string{{"py", "-3"}, {"python"}})
	if err == nil {
		t.Fatal("expected error when no candidate exists")
	}
	if !strings.Contains(err.Error(), "py -3") || !strings.Contains(err.Error(), "python") {
		t.Errorf("error = %q, want the tried candidates listed", err)
	}
}

func TestDiagScript(t *testing.T) {
	s := DiagScript("tkinter")
	if !strings.HasPrefix(s, "import sys, tkinter;") {
		t.Errorf("script = %q, want the import first", s)
	}
	if !strings.Contains(s, "sys.version") {
		t.Errorf("script = %q, want sys.version printed", s)
	}
	if !strings.Contains(s, "tkinter OK ->") {
		t.Errorf("script = %q, want the confirmation marker", s)
	}
	if !strings.Contains(s, "sys.executable") {
		t.Errorf("script = %q, want sys.executable printed", s)
	}
}

func TestDiagArgv(t *testing.T) {
	it := &Interpreter{Argv: []string{"py", "-3"}}
	argv := it.DiagArgv("tkinter")
	if argv[0] != "py" || argv[1] != "-3" || argv[2] != "-c" {
		t.Errorf("argv = %v, want [py -3 -c <script>]", argv)
	}
	// Building argv must not mutate the interpreter.
	if len(it.Argv) != 2 {
		t.Errorf("Argv = %v, want unchanged", it.Argv)
	}
}

func TestLaunchArgv(t *testing.T) {
	it := &Interpreter{Argv: []string{"python3"}}
	argv := it.LaunchArgv("/apps/URN_SpotDL.py")
	if len(argv) != 2 || argv[1] != "/apps/URN_SpotDL.py" {
		t.Errorf("argv = %v, want [python3 /apps/URN_SpotDL.py]", argv)
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
		ok     bool
	}{
		{"sys.version", "3.11.4 (main, Jun  7 2023, 00:00:00) [GCC 12]\ntkinter OK -> /usr/bin/python3", "3.11.4", true},
		{"dash V form", "Python 3.12.1", "3.12.1", true},
		{"free threaded", "3.13.0+ (heads/main)", "3.13.0", true},
		{"empty", "", "", false},
		{"garbage", "zsh: command not found", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.output)
			if tt.ok != (err == nil) {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if err != nil {
				return
			}
			if v.Original() != tt.want {
				t.Errorf("version = %s, want %s", v.Original(), tt.want)
			}
		})
	}
}
