// Command spotlaunch starts the SpotDL GUI with a resolved Python
// interpreter, after checking that the GUI toolkit is importable.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/deixis/spotlaunch"
	"github.com/deixis/spotlaunch/internal/config"
	"github.com/deixis/spotlaunch/internal/diag"
	"github.com/deixis/spotlaunch/internal/launch"
	"github.com/deixis/spotlaunch/internal/report"
	"github.com/deixis/spotlaunch/internal/runner"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("spotlaunch: ")

	// A double-clicked launcher arrives with no arguments; that is the
	// primary invocation and it must run the pipeline.
	cmd := "run"
	args := os.Args[1:]
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	var err error
	switch cmd {
	case "run":
		err = runMain(args)
	case "doctor":
		err = doctorMain(args)
	case "report":
		err = reportMain(args)
	case "version":
		fmt.Println(spotlaunch.Version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "spotlaunch: unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: spotlaunch [command] [flags]

Commands:
  run         Resolve the interpreter, check tkinter, start the GUI (default)
  doctor      Run diagnostics without starting the GUI
  report      List recorded runs, or show one by ID
  version     Print the version
  help        Show this help

Use "spotlaunch <command> -h" for command-specific flags.`)
}

// --- run ---

func runMain(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	dirFlag := fs.String("dir", "", "script folder override (default: the launcher's own directory)")
	jsonFlag := fs.Bool("json", false, "print the run report as JSON after the pipeline")
	noPause := fs.Bool("no-pause", false, "do not wait for a keypress before exiting")
	timeoutFlag := fs.Duration("timeout", 0, "override the diagnostics timeout (e.g. 1m)")
	_ = fs.Parse(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, cfg, r, err := setup(*dirFlag, *timeoutFlag)
	if err != nil {
		return err
	}

	eng := &launch.Engine{Config: cfg, Runner: r, ScriptDir: dir}
	result := eng.Run(ctx, os.Stdout, os.Stderr)

	saveReport(result.RunResult, cfg)

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.RunResult); err != nil {
			return err
		}
	}

	// The window a double-click opened closes with the process; hold it
	// so the output survives, whatever happened above.
	if !*noPause {
		pause()
	}
	return nil
}

// --- doctor ---

func doctorMain(args []string) error {
	fs := flag.NewFlagSet("doctor", flag.ExitOnError)
	dirFlag := fs.String("dir", "", "script folder override (default: the launcher's own directory)")
	jsonFlag := fs.Bool("json", false, "output checks as JSON")
	timeoutFlag := fs.Duration("timeout", 0, "override the diagnostics timeout (e.g. 1m)")
	_ = fs.Parse(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, cfg, r, err := setup(*dirFlag, *timeoutFlag)
	if err != nil {
		return err
	}

	d := &diag.Doctor{Config: cfg, Runner: r, ScriptDir: dir}
	checks, ok := d.Run(ctx)

	rr := doctorRunResult(d, checks, ok)
	saveReport(rr, cfg)

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rr); err != nil {
			return err
		}
	} else {
		fmt.Print(formatDoctorCLI(checks, ok))
	}

	if !ok {
		os.Exit(1)
	}
	return nil
}

func doctorRunResult(d *diag.Doctor, checks []diag.CheckResult, ok bool) *report.RunResult {
	rr := &report.RunResult{
		ID:        uuid.New().String(),
		Kind:      report.Doctor,
		Started:   time.Now(),
		Finished:  time.Now(),
		ScriptDir: d.ScriptDir,
		App:       d.Config.AppFile(),
	}
	if !ok {
		rr.ExitCode = 1
	}
	for _, c := range checks {
		status := c.Status
		if status == "ok" {
			status = "pass"
		}
		rr.Steps = append(rr.Steps, report.Step{Name: c.Name, Status: status, Detail: c.Detail})
	}
	return rr
}

// --- report ---

func reportMain(args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	jsonFlag := fs.Bool("json", false, "output as JSON")
	_ = fs.Parse(args)

	store, err := newStore(&config.Config{})
	if err != nil {
		return err
	}

	if fs.NArg() > 0 {
		rr, err := store.Load(fs.Arg(0))
		if err != nil {
			return err
		}
		if *jsonFlag {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rr)
		}
		fmt.Print(formatRunCLI(rr))
		return nil
	}

	runs, err := store.List()
	if err != nil {
		return err
	}
	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}
	fmt.Print(formatRunListCLI(runs))
	return nil
}

// --- shared ---

func setup(dirOverride string, timeoutOverride time.Duration) (string, *config.Config, *runner.Runner, error) {
	dir, err := scriptDir(dirOverride)
	if err != nil {
		return "", nil, nil, err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return "", nil, nil, fmt.Errorf("loading config: %w", err)
	}

	timeout := cfg.Timeout()
	if timeoutOverride > 0 {
		timeout = timeoutOverride
	}

	r := &runner.Runner{
		Dir:       dir,
		Timeout:   timeout,
		MaxOutput: cfg.MaxOutputBytes(),
	}

	return dir, cfg, r, nil
}

// scriptDir resolves the folder containing the launcher itself, which
// anchors both the config file and the application entry file.
func scriptDir(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}

	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Abs(filepath.Dir(exe))
}

func newStore(cfg *config.Config) (report.Store, error) {
	dir, err := report.DefaultDir()
	if err != nil {
		return nil, err
	}
	return report.NewDiskStore(dir, cfg.HistoryKeep()), nil
}

// saveReport persists the run best-effort; a failing store must never
// break a launch.
func saveReport(rr *report.RunResult, cfg *config.Config) {
	store, err := newStore(cfg)
	if err != nil {
		log.Printf("run report not saved: %v", err)
		return
	}
	if err := store.Save(rr); err != nil {
		log.Printf("run report not saved: %v", err)
	}
}
