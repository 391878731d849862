// Package launch implements the launcher pipeline: resolve the Python
// interpreter, run the diagnostics probe, start the GUI application,
// and record the outcome. It is consumed by the CLI commands.
package launch

import (
	"context"
	"io"

	"github.com/deixis/spotlaunch/internal/config"
	"github.com/deixis/spotlaunch/internal/runner"
)

// CommandRunner executes commands for the pipeline.
// Implemented by runner.Runner.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) (*runner.Result, error)
	Stream(ctx context.Context, argv []string, stdout, stderr io.Writer) (*runner.Result, error)
}

// Engine holds shared dependencies for a launcher run.
type Engine struct {
	Config    *config.Config
	Runner    CommandRunner
	ScriptDir string // folder containing the launcher and the app file
}

// ExitCommandNotFound is the exit code reported when an invocation
// never produced a status because its binary does not exist. It
// mirrors the shell convention for "command not found".
const ExitCommandNotFound = 127
