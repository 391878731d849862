// Package report provides structured persistence and retrieval of
// launcher run results.
package report

import "time"

// Kind identifies the type of a run.
type Kind string

const (
	// Launch is a full pipeline run (resolve, diagnostics, launch).
	Launch Kind = "launch"
	// Doctor is a diagnostics-only run.
	Doctor Kind = "doctor"
)

// RunResult holds the recorded outcome of a launcher run.
type RunResult struct {
	ID       string    `json:"id"`
	Kind     Kind      `json:"kind"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`

	ScriptDir   string `json:"script_dir"`
	Interpreter string `json:"interpreter,omitempty"`      // invocation, e.g. "py -3"
	InterpPath  string `json:"interpreter_path,omitempty"` // probed binary path
	PyVersion   string `json:"python_version,omitempty"`   // parsed from diagnostics output
	App         string `json:"app,omitempty"`              // application entry file
	ExitCode    int    `json:"exit_code"`

	Steps []Step `json:"steps,omitempty"`
}

// Step records one pipeline or doctor step.
type Step struct {
	Name   string `json:"name"`
	Status string `json:"status"` // pass, fail, warn, skipped, unavailable
	Detail string `json:"detail,omitempty"`
	Output string `json:"output,omitempty"`
}

// Store persists and retrieves run results.
type Store interface {
	Save(result *RunResult) error
	Load(runID string) (*RunResult, error)
	List() ([]*RunResult, error)
}
