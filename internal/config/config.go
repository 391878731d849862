// Package config loads and validates the optional .spotlaunch YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for launcher configuration.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultMaxOutput = 1 << 20 // 1 MB
	DefaultApp       = "URN_SpotDL.py"
	DefaultGUIModule = "tkinter"
	DefaultMinPython = "3.8"
	DefaultKeep      = 20
)

// Config holds the parsed .spotlaunch configuration.
// All fields are optional; zero values represent defaults.
type Config struct {
	Version      int               `yaml:"version"`
	App          string            `yaml:"app"`        // application entry file, relative to the script folder
	GUIModule    string            `yaml:"gui_module"` // module that must import before launch
	RawTimeout   string            `yaml:"timeout"`    // diagnostics timeout, e.g. "30s"
	RawMaxOutput int               `yaml:"max_output"` // bytes
	Interpreter  InterpreterConfig `yaml:"interpreter"`
	History      HistoryConfig     `yaml:"history"`
}

// InterpreterConfig controls how the Python interpreter is resolved.
type InterpreterConfig struct {
	Candidates []string `yaml:"candidates"`  // invocations tried in order, e.g. ["py -3", "python"]
	MinVersion string   `yaml:"min_version"` // doctor-only floor, e.g. "3.8"
}

// HistoryConfig controls run report retention.
type HistoryConfig struct {
	Keep int `yaml:"keep"` // newest run reports kept on disk
}

// Timeout returns the configured diagnostics timeout or the default.
// The launch step itself never times out; the GUI owns its lifetime.
func (c *Config) Timeout() time.Duration {
	if c.RawTimeout != "" {
		d, err := time.ParseDuration(c.RawTimeout)
		if err == nil && d > 0 {
			return d
		}
	}
	return DefaultTimeout
}

// MaxOutputBytes returns the configured max output size or the default.
func (c *Config) MaxOutputBytes() int {
	if c.RawMaxOutput > 0 {
		return c.RawMaxOutput
	}
	return DefaultMaxOutput
}

// AppFile returns the application entry file name, falling back to the
// bundled GUI script.
func (c *Config) AppFile() string {
	if c.App != "" {
		return c.App
	}
	return DefaultApp
}

// GUIModuleName returns the module probed by the diagnostics step.
func (c *Config) GUIModuleName() string {
	if c.GUIModule != "" {
		return c.GUIModule
	}
	return DefaultGUIModule
}

// MinVersion returns the doctor version floor, falling back to the
// oldest Python the GUI supports.
func (c *Config) MinVersion() string {
	if c.Interpreter.MinVersion != "" {
		return c.Interpreter.MinVersion
	}
	return DefaultMinPython
}

// HistoryKeep returns how many run reports are retained on disk.
func (c *Config) HistoryKeep() int {
	if c.History.Keep > 0 {
		return c.History.Keep
	}
	return DefaultKeep
}

// DefaultCandidates returns the interpreter invocations probed when
// none are configured. Windows prefers the py launcher with an explicit
// version qualifier; everywhere else python3 comes first. The last
// entry is the generic fallback.
func DefaultCandidates() [][]string {
	if runtime.GOOS == "windows" {
		return [][]string{{"py", "-3"}, {"python"}}
	}
	return [][]string{{"python3"}, {"python"}}
}

// Candidates returns the configured interpreter invocations, falling
// back to the platform defaults. Each configured entry is split on
// whitespace, so "py -3" becomes {"py", "-3"}.
func (c *Config) Candidates() [][]string {
	if len(c.Interpreter.Candidates) == 0 {
		return DefaultCandidates()
	}
	out := make([][]string, 0, len(c.Interpreter.Candidates))
	for _, cand := range c.Interpreter.Candidates {
		argv := strings.Fields(cand)
		if len(argv) > 0 {
			out = append(out, argv)
		}
	}
	if len(out) == 0 {
		return DefaultCandidates()
	}
	return out
}

// Load reads the .spotlaunch file from the script folder. If no file
// exists, a default Config is returned.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ".spotlaunch")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading .spotlaunch: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing .spotlaunch: %w", err)
	}
	return cfg, nil
}
