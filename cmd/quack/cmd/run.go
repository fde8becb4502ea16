package cmd

import (
	"fmt"
	"os"

	"github.com/quackscript/quack/internal/config"
	"github.com/quackscript/quack/internal/host"
	"github.com/quackscript/quack/pkg/quack"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	dumpAST    bool
	trace      bool
	configPath string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a QuackScript file or expression",
	Long: `Execute a QuackScript program from a file or inline expression.

Examples:
  # Run a script file
  quack run script.qk

  # Evaluate an inline expression
  quack run -e 'QUACK x <- 2 + 3🦆 x🦆'

  # Run with AST dump (for debugging)
  quack run --dump-ast script.qk

  # Run with execution trace
  quack run --trace script.qk`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace function entry/exit (for debugging)")
	runCmd.Flags().StringVar(&configPath, "config", "quack.yaml", "path to a quack.yaml project config file")
}

func runScript(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case evalExpr != "":
		input, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	cfg := config.LoadOrDefault(configPath)

	opts := []quack.Option{quack.WithConfig(cfg)}
	if trace || cfg.Trace {
		opts = append(opts, quack.WithTrace(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "[trace] "+format+"\n", args...)
		}))
	}

	interp := quack.New(host.StdSystem{}, opts...)

	mod, err := interp.Parse(input)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}

	if dumpAST {
		fmt.Printf("%+v\n\n", mod)
	}

	return interp.Execute(mod)
}
