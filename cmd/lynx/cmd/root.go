// ==============================================================================================
// FILE: cmd/lynx/cmd/root.go
// ==============================================================================================
// PACKAGE: cmd
// PURPOSE: The cobra command tree (§6.2): `lynx <file> [dotted-path]`.
//          Parses file, prints either the whole root or one dotted-path
//          entry, and exits non-zero on parse or lookup failure.
// ==============================================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/interp"
)

var (
	noColor bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lynx <file> [dotted-path]",
	Short: "Parse and print a Lynx configuration file",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "has no effect; every diagnostic is always printed")
}

// Execute runs the root command, matching go-dws/ailang's main.go ->
// cmd.Execute() -> os.Exit(1) on error convention.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(c *cobra.Command, args []string) error {
	file := args[0]
	var path []string
	if len(args) == 2 {
		path = strings.Split(args[1], ".")
	}

	sink := diag.NewColorSink(os.Stderr, !noColor)

	in := interp.New(sink)
	in.BaseDir = filepath.Dir(file)

	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lynx: %v\n", err)
		return err
	}

	root, ok := in.Parse(file, string(data))
	if !ok {
		return fmt.Errorf("parse failed")
	}

	if len(path) == 0 {
		root.Print(os.Stdout, 0)
		return nil
	}

	entry, ok := root.GetByPath(path)
	if !ok {
		fmt.Fprintf(os.Stderr, "lynx: %q does not resolve\n", args[1])
		return fmt.Errorf("lookup failed")
	}
	entry.Print(os.Stdout, 0)
	return nil
}
