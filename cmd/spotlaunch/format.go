package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/deixis/spotlaunch/internal/diag"
	"github.com/deixis/spotlaunch/internal/report"
)

func formatDoctorCLI(checks []diag.CheckResult, ok bool) string {
	var b strings.Builder

	if ok {
		fmt.Fprintf(&b, "%s\n\n", color.GreenString("ok"))
	} else {
		fmt.Fprintf(&b, "%s\n\n", color.RedString("FAIL"))
	}

	for _, c := range checks {
		var status string
		switch c.Status {
		case "ok":
			status = color.GreenString("ok")
		case "warn":
			status = color.YellowString("warn")
		case "fail":
			status = color.RedString("FAIL")
		default:
			status = "-"
		}
		fmt.Fprintf(&b, "  %-12s %s", c.Name, status)
		if c.Detail != "" {
			fmt.Fprintf(&b, "  %s", c.Detail)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatRunCLI(rr *report.RunResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Run %s (%s)\n", rr.ID, rr.Kind)
	fmt.Fprintf(&b, "  started:     %s\n", rr.Started.Format(time.RFC3339))
	fmt.Fprintf(&b, "  script dir:  %s\n", rr.ScriptDir)
	if rr.Interpreter != "" {
		line := rr.Interpreter
		if rr.PyVersion != "" {
			line += " " + rr.PyVersion
		}
		if rr.InterpPath != "" {
			line += " (" + rr.InterpPath + ")"
		}
		fmt.Fprintf(&b, "  interpreter: %s\n", line)
	}
	if rr.App != "" {
		fmt.Fprintf(&b, "  app:         %s\n", rr.App)
	}
	fmt.Fprintf(&b, "  exit code:   %s\n", formatExitCode(rr.ExitCode))

	if len(rr.Steps) > 0 {
		b.WriteString("\n")
		for _, s := range rr.Steps {
			var status string
			switch s.Status {
			case "pass":
				status = color.GreenString("ok")
			case "warn":
				status = color.YellowString("warn")
			case "fail":
				status = color.RedString("FAIL")
			default:
				status = "-"
			}
			fmt.Fprintf(&b, "  %-12s %s", s.Name, status)
			if s.Detail != "" {
				fmt.Fprintf(&b, "  %s", s.Detail)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func formatRunListCLI(runs []*report.RunResult) string {
	if len(runs) == 0 {
		return "No recorded runs.\n"
	}

	var b strings.Builder
	for _, rr := range runs {
		fmt.Fprintf(&b, "%s  %-6s  exit %-4s  %s\n",
			rr.Started.Format("2006-01-02 15:04:05"), rr.Kind, formatExitCode(rr.ExitCode), rr.ID)
	}
	return b.String()
}

func formatExitCode(code int) string {
	if code == 0 {
		return color.GreenString("0")
	}
	return color.RedString("%d", code)
}
