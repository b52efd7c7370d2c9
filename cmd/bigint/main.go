package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errorColor = color.New(color.FgRed, color.Bold)

// main executes the root command and exits with status 1 if it fails.
// An interrupt cancels long running multiplications.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// app holds state shared by all subcommands.
// It is populated before any subcommand runs.
type app struct {
	calc *calculator
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "bigint",
		Short: "Arbitrary-precision integer calculator",
		Long: `bigint evaluates integer expressions of any size.
Numbers are written in decimal, operators use prefix (Polish) notation.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			calc, err := newCalculatorFromFlags(cmd)
			if err != nil {
				return err
			}
			a.calc = calc
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "path to a TOML configuration file")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Int("workers", 1, "number of goroutines used by large multiplications")
	root.PersistentFlags().Bool("lenient", false, "ignore everything before the last run of digits in a number instead of failing")
	root.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	root.PersistentFlags().String("log-fmt", "text", "log format (text|json)")

	root.AddCommand(newEvalCmd(a))
	root.AddCommand(newFactCmd(a))
	root.AddCommand(newPowCmd(a))
	root.AddCommand(newInfoCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// setColorMode enables or disables colored output.
func setColorMode(mode string, f *os.File) error {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(f)
	default:
		return fmt.Errorf("unknown color mode %q", mode)
	}
	return nil
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
