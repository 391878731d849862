// Package diag implements the doctor checks: everything the launcher
// depends on is verified without starting the GUI.
package diag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	goversion "github.com/hashicorp/go-version"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/deixis/spotlaunch/internal/config"
	"github.com/deixis/spotlaunch/internal/interp"
	"github.com/deixis/spotlaunch/internal/runner"
)

// CommandRunner runs the interpreter probe.
// Implemented by runner.Runner.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) (*runner.Result, error)
}

// Doctor holds shared dependencies for a diagnostics run.
type Doctor struct {
	Config    *config.Config
	Runner    CommandRunner
	ScriptDir string
}

// CheckResult holds the outcome of a single doctor check.
type CheckResult struct {
	Name   string
	Status string // ok, warn, fail, skipped
	Detail string
}

// Run executes all doctor checks in order without stopping on failure
// and reports whether every check passed (warnings do not fail a run).
func (d *Doctor) Run(ctx context.Context) ([]CheckResult, bool) {
	checks := []CheckResult{
		d.checkHost(),
		d.checkDisplay(),
		d.checkInterpreter(ctx),
		d.checkAppFile(),
	}

	ok := true
	for _, c := range checks {
		if c.Status == "fail" {
			ok = false
		}
	}
	return checks, ok
}

// checkHost reports the platform and available memory. It never fails
// a run; an unreadable host is only a warning.
func (d *Doctor) checkHost() CheckResult {
	info, err := host.Info()
	if err != nil {
		return CheckResult{Name: "host", Status: "warn", Detail: fmt.Sprintf("host info unavailable: %v", err)}
	}

	detail := fmt.Sprintf("%s %s (%s/%s)", info.Platform, info.PlatformVersion, runtime.GOOS, runtime.GOARCH)
	if vm, err := mem.VirtualMemory(); err == nil {
		detail += fmt.Sprintf(", %.1f GiB RAM free of %.1f GiB",
			float64(vm.Available)/(1<<30), float64(vm.Total)/(1<<30))
	}
	return CheckResult{Name: "host", Status: "ok", Detail: detail}
}

// checkDisplay verifies a display server is reachable on Linux, where
// a tkinter window cannot open headless. Elsewhere the windowing
// system is always present.
func (d *Doctor) checkDisplay() CheckResult {
	if runtime.GOOS != "linux" {
		return CheckResult{Name: "display", Status: "skipped", Detail: "not applicable on " + runtime.GOOS}
	}
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return CheckResult{
			Name:   "display",
			Status: "fail",
			Detail: "no display detected (DISPLAY and WAYLAND_DISPLAY are unset); the GUI cannot open",
		}
	}
	return CheckResult{Name: "display", Status: "ok", Detail: "display server detected"}
}

// checkInterpreter requires a candidate on PATH, runs the import
// probe, and compares the reported version against the configured
// floor.
func (d *Doctor) checkInterpreter(ctx context.Context) CheckResult {
	it, err := interp.Find(d.Config.Candidates())
	if err != nil {
		return CheckResult{Name: "interpreter", Status: "fail", Detail: err.Error()}
	}

	res, err := d.Runner.Run(ctx, it.DiagArgv(d.Config.GUIModuleName()))
	if err != nil {
		return CheckResult{Name: "interpreter", Status: "fail", Detail: err.Error()}
	}
	if res.ExitCode != 0 {
		detail := strings.TrimSpace(string(res.Stderr))
		if detail == "" {
			detail = fmt.Sprintf("probe exited with code %d", res.ExitCode)
		}
		return CheckResult{
			Name:   "interpreter",
			Status: "fail",
			Detail: fmt.Sprintf("%s: %s module not importable: %s", it, d.Config.GUIModuleName(), detail),
		}
	}

	v, err := interp.ParseVersion(string(res.Stdout))
	if err != nil {
		return CheckResult{Name: "interpreter", Status: "warn", Detail: fmt.Sprintf("%s at %s, version unreadable: %v", it, it.Path, err)}
	}

	detail := fmt.Sprintf("%s %s at %s, %s importable", it, v, it.Path, d.Config.GUIModuleName())
	if floor, err := goversion.NewVersion(d.Config.MinVersion()); err == nil && v.LessThan(floor) {
		return CheckResult{
			Name:   "interpreter",
			Status: "warn",
			Detail: fmt.Sprintf("%s, below the supported floor %s", detail, floor),
		}
	}
	return CheckResult{Name: "interpreter", Status: "ok", Detail: detail}
}

// checkAppFile verifies the application entry file sits beside the
// launcher, the relocation failure mode the launch step would
// otherwise surface through the interpreter.
func (d *Doctor) checkAppFile() CheckResult {
	path := filepath.Join(d.ScriptDir, d.Config.AppFile())
	info, err := os.Stat(path)
	if err != nil {
		return CheckResult{Name: "app file", Status: "fail", Detail: fmt.Sprintf("%s not found in the script folder", d.Config.AppFile())}
	}
	return CheckResult{
		Name:   "app file",
		Status: "ok",
		Detail: fmt.Sprintf("%s (%d bytes, modified %s)", path, info.Size(), info.ModTime().Format(time.DateOnly)),
	}
}
