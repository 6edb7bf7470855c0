package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mythonlang/mython/internal/config"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "mython",
	Short: "Mython interpreter",
	Long: `mython is a tree-walking interpreter for Mython, a small
dynamically-typed, object-oriented scripting language: integers,
strings, booleans, single inheritance, and the special methods
__init__, __str__, and __add__.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored error output")
}

// wantColor decides whether error output should be ANSI-colored: the
// --no-color flag and an optional .mython.yaml NoColor setting both
// force it off; otherwise it follows whether stdout is a terminal.
func wantColor() bool {
	if noColor {
		return false
	}
	opts, err := config.Load(config.DefaultPath)
	if err == nil && opts.NoColor {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
