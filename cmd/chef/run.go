package main

import (
	"fmt"
	"os"
	"strings"

	cerrors "github.com/kitchenscript/chef/errors"
	"github.com/kitchenscript/chef/parser"
	"github.com/kitchenscript/chef/runtime"
	"github.com/spf13/cobra"
)

var (
	runFile       string
	runParseOnly  bool
	runConfigPath string
)

func init() {
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = runRoot
	rootCmd.Flags().StringVarP(&runFile, "file", "f", "", "recipe file to interpret (or pass it as the sole positional argument)")
	rootCmd.Flags().BoolVarP(&runParseOnly, "parse-only", "p", false, "parse the recipe and print its AST instead of running it")
	rootCmd.Flags().StringVar(&runConfigPath, "config", defaultConfigPath(), "path to an optional .chef.toml settings file")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(runConfigPath)

	path := runFile
	if path == "" && len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no recipe given: pass a path or use -f/--file (stdin is reserved for the recipe's own Take statements)")
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	res, err := parser.New().ParseBytes(source)
	if err != nil {
		return reportChefError(err, source)
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	if runParseOnly {
		return printRecipe(os.Stdout, res, cfg.Format)
	}

	ev := runtime.New(res.Recipe, os.Stdin, os.Stdout, nil)
	if cfg.Verbose {
		fmt.Fprintln(os.Stderr, "running:", path)
	}
	if err := ev.Run(); err != nil {
		return reportChefError(err, source)
	}
	return nil
}

// reportChefError prints two lines of source context around a ChefError's
// offending line, the way the original interpreter's main() highlights the
// failing statement, and returns the error unchanged so the caller still
// exits non-zero.
func reportChefError(err error, source []byte) error {
	cerr, ok := err.(cerrors.ChefError)
	if !ok {
		return err
	}
	lineno, ok := cerr.Lineno()
	if !ok {
		return err
	}
	lines := strings.Split(string(source), "\n")
	start := lineno - 2
	if start < 1 {
		start = 1
	}
	end := lineno + 2
	if end > len(lines) {
		end = len(lines)
	}
	fmt.Fprintln(os.Stderr, "---")
	for i := start; i <= end; i++ {
		marker := "  "
		if i == lineno {
			marker = "> "
		}
		fmt.Fprintf(os.Stderr, "%s%4d| %s\n", marker, i, lines[i-1])
	}
	fmt.Fprintln(os.Stderr, "---")
	return err
}
