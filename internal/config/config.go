// Package config loads optional per-project Mython settings from a
// .mython.yaml file, layered underneath the CLI's command-line flags.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// RunOptions are project settings read by the CLI: the run command
// applies MaxCallDepth, and run/parse error output honours NoColor.
// The lex command does not read them.
type RunOptions struct {
	// MaxCallDepth bounds method-call recursion (0 means "use the
	// runtime default"). No command-line flag sets it.
	MaxCallDepth int `yaml:"maxCallDepth"`
	// NoColor turns off ANSI coloring of error output even when stdout
	// is a terminal; --no-color does the same.
	NoColor bool `yaml:"noColor"`
}

// Load reads path and decodes it as YAML. A missing file is not an
// error: it returns a zero-value RunOptions, so callers can always
// treat the result as "defaults, possibly overridden."
func Load(path string) (RunOptions, error) {
	var opts RunOptions
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// DefaultPath is the conventional project config file name, checked
// in the current working directory.
const DefaultPath = ".mython.yaml"
