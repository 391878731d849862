// Package interp resolves the Python interpreter used to launch the GUI.
package interp

import (
	"fmt"
	"os/exec"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Interpreter is a resolved Python invocation.
type Interpreter struct {
	Argv []string // invocation prefix, e.g. {"py", "-3"} or {"python3"}
	Path string   // probed binary path; empty for the unprobed fallback
}

// String returns the invocation as typed on a command line.
func (i *Interpreter) String() string {
	return strings.Join(i.Argv, " ")
}

// DiagArgv returns the argv for the diagnostics step: import the GUI
// module, print sys.version, then confirm the import along with the
// executable actually running.
func (i *Interpreter) DiagArgv(guiModule string) []string {
	return append(i.prefix(), "-c", DiagScript(guiModule))
}

// LaunchArgv returns the argv for running the application entry file.
func (i *Interpreter) LaunchArgv(appPath string) []string {
	return append(i.prefix(), appPath)
}

func (i *Interpreter) prefix() []string {
	return append([]string{}, i.Argv...)
}

// DiagScript builds the -c program for the diagnostics step. The
// import sits first, so a missing GUI module fails the whole
// invocation before anything is printed.
func DiagScript(guiModule string) string {
	return fmt.Sprintf("import sys, %s; print(sys.version); print(%q, sys.executable)",
		guiModule, guiModule+" OK ->")
}

// Resolve probes every candidate but the last for presence on PATH and
// returns the first hit. When none is found the final candidate is
// returned unprobed: it is the generic fallback, and a missing binary
// there surfaces as the OS's own error when the invocation runs.
// candidates must not be empty.
func Resolve(candidates [][]string) *Interpreter {
	for _, argv := range candidates[:len(candidates)-1] {
		if len(argv) == 0 {
			continue
		}
		if path, err := exec.LookPath(argv[0]); err == nil {
			return &Interpreter{Argv: argv, Path: path}
		}
	}

	fallback := candidates[len(candidates)-1]
	it := &Interpreter{Argv: fallback}
	if path, err := exec.LookPath(fallback[0]); err == nil {
		it.Path = path
	}
	return it
}

// ErrUnavailable is returned by Find when no candidate is on PATH.
type ErrUnavailable struct {
	Candidates [][]string
}

func (e ErrUnavailable) Error() string {
	names := make([]string, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		names = append(names, strings.Join(c, " "))
	}
	return fmt.Sprintf("no Python interpreter found (tried: %s).\nInstall Python 3 from https://www.python.org/downloads/ and make sure it is on PATH.",
		strings.Join(names, ", "))
}

// Find is like Resolve but requires the chosen binary to exist. Doctor
// uses it to report a missing interpreter directly instead of
// deferring to the OS error.
func Find(candidates [][]string) (*Interpreter, error) {
	for _, argv := range candidates {
		if len(argv) == 0 {
			continue
		}
		if path, err := exec.LookPath(argv[0]); err == nil {
			return &Interpreter{Argv: argv, Path: path}, nil
		}
	}
	return nil, ErrUnavailable{Candidates: candidates}
}

// ParseVersion extracts the interpreter version from diagnostics
// output. The first line is sys.version ("3.11.4 (main, ...)"); the
// "Python 3.11.4" form printed by -V also parses.
func ParseVersion(output string) (*goversion.Version, error) {
	line := strings.TrimSpace(strings.SplitN(output, "\n", 2)[0])
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty version output")
	}

	tok := fields[0]
	if strings.EqualFold(tok, "python") && len(fields) > 1 {
		tok = fields[1]
	}
	// Free-threaded builds report e.g. "3.13.0+".
	tok = strings.TrimSuffix(tok, "+")

	v, err := goversion.NewVersion(tok)
	if err != nil {
		return nil, fmt.Errorf("parsing interpreter version %q: %w", tok, err)
	}
	return v, nil
}
