package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/snwfog/singly.go/internal/script"
)

var (
	strict   bool
	verbose  bool
	parallel int
)

var rootCmd = &cobra.Command{
	Use:           "llscript",
	Short:         "Run linked list operation scripts",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Execute each script against its own list and print every result",
	Long: `Execute each script against its own list and print every result.
Scripts hold one operation per line, for example:

  push_back 1
  insert 0 9
  pop_front

Use - to read a script from stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		scripts := make([]*script.Script, 0, len(args))
		for _, name := range args {
			s, err := load(name, cmd.InOrStdin())
			if err != nil {
				logger.Error("parse failed", zap.String("script", name), zap.Error(err))
				return err
			}
			scripts = append(scripts, s)
		}

		runner := script.NewRunner(logger, script.Options{Strict: strict, Parallel: parallel})
		reports, err := runner.RunAll(cmd.Context(), scripts)
		printReports(cmd.OutOrStdout(), reports)

		stats := runner.Stats()
		logger.Info("run finished",
			zap.Int64("scripts", stats.Scripts.Load()),
			zap.Int64("ops", stats.Ops.Load()),
			zap.Int64("failures", stats.Failures.Load()))

		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	registerRunFlags(runCmd.Flags())
}

func registerRunFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&strict, "strict", false, "abort a script at its first failed operation")
	fs.IntVar(&parallel, "parallel", 4, "number of scripts to run at once")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction(zap.AddStacktrace(zapcore.PanicLevel))
}

func load(name string, stdin io.Reader) (*script.Script, error) {
	if name == "-" {
		return script.Parse("stdin", stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open script")
	}
	defer f.Close()

	return script.Parse(name, f)
}

func printReports(w io.Writer, reports []script.Report) {
	for _, report := range reports {
		fmt.Fprintf(w, "== %s\n", report.Name)
		for _, res := range report.Results {
			fmt.Fprintln(w, res.String())
		}
		fmt.Fprintf(w, "final %s\n", report.Final)
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
