package launch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/deixis/spotlaunch/internal/interp"
	"github.com/deixis/spotlaunch/internal/report"
)

// Result holds the full outcome of a pipeline run.
type Result struct {
	RunResult *report.RunResult
	ExitCode  int  // final code reported on the console
	Failed    bool // true when any step failed
}

// Run executes the pipeline and writes the console contract to out and
// errOut: the script folder line, the chosen interpreter line, the
// diagnostics output, the launch separator, the application's own
// output, and the final exit code line. A failed step leaves its
// diagnostic text on the console and the pipeline moves on; the final
// line carries the launch step's exit code. There is no retry and no
// recovery anywhere.
func (e *Engine) Run(ctx context.Context, out, errOut io.Writer) *Result {
	rr := &report.RunResult{
		ID:        uuid.New().String(),
		Kind:      report.Launch,
		Started:   time.Now(),
		ScriptDir: e.ScriptDir,
		App:       e.Config.AppFile(),
	}

	fmt.Fprintf(out, "Script folder: %s\n", e.ScriptDir)

	// Resolve. A single existence probe with two outcomes: the
	// preferred alias when present, the generic fallback otherwise.
	it := interp.Resolve(e.Config.Candidates())
	rr.Interpreter = it.String()
	rr.InterpPath = it.Path
	rr.Steps = append(rr.Steps, report.Step{Name: "resolve", Status: "pass", Detail: it.String()})

	fmt.Fprintf(out, "Using launcher: %s\n", it)

	e.runDiagnostics(ctx, it, rr, out, errOut)

	fmt.Fprintln(out, "---- launching GUI ----")

	// Launch runs even after a failed diagnostic, so the final line
	// reflects the launch attempt itself.
	exitCode := e.runApp(ctx, it, rr, out, errOut)

	fmt.Fprintf(out, "---- process exited, code %d ----\n", exitCode)

	rr.ExitCode = exitCode
	rr.Finished = time.Now()

	failed := false
	for _, s := range rr.Steps {
		if s.Status == "fail" {
			failed = true
		}
	}
	return &Result{RunResult: rr, ExitCode: exitCode, Failed: failed}
}

// runDiagnostics runs the import-and-version probe and forwards its
// output to the console.
func (e *Engine) runDiagnostics(ctx context.Context, it *interp.Interpreter, rr *report.RunResult, out, errOut io.Writer) {
	res, err := e.Runner.Run(ctx, it.DiagArgv(e.Config.GUIModuleName()))
	if err != nil {
		// The interpreter binary itself is missing; the exec error is
		// the only diagnostic there is.
		fmt.Fprintln(errOut, err)
		rr.Steps = append(rr.Steps, report.Step{Name: "diagnostics", Status: "fail", Detail: err.Error()})
		return
	}

	out.Write(res.Stdout)
	errOut.Write(res.Stderr)

	if res.ExitCode != 0 {
		rr.Steps = append(rr.Steps, report.Step{
			Name:   "diagnostics",
			Status: "fail",
			Detail: fmt.Sprintf("exit code %d", res.ExitCode),
			Output: string(res.Stderr),
		})
		return
	}

	if v, err := interp.ParseVersion(string(res.Stdout)); err == nil {
		rr.PyVersion = v.String()
	}
	rr.Steps = append(rr.Steps, report.Step{Name: "diagnostics", Status: "pass", Output: string(res.Stdout)})
}

// runApp starts the GUI application, blocks until it exits, and
// returns the exit code reported on the final console line.
func (e *Engine) runApp(ctx context.Context, it *interp.Interpreter, rr *report.RunResult, out, errOut io.Writer) int {
	appPath := filepath.Join(e.ScriptDir, e.Config.AppFile())

	res, err := e.Runner.Stream(ctx, it.LaunchArgv(appPath), out, errOut)
	if err != nil {
		fmt.Fprintln(errOut, err)
		rr.Steps = append(rr.Steps, report.Step{Name: "launch", Status: "fail", Detail: err.Error()})
		return ExitCommandNotFound
	}

	status := "pass"
	detail := ""
	if res.ExitCode != 0 {
		status = "fail"
		detail = fmt.Sprintf("exit code %d", res.ExitCode)
	}
	rr.Steps = append(rr.Steps, report.Step{Name: "launch", Status: status, Detail: detail})
	return res.ExitCode
}
