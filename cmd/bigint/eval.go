package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval expression...",
		Short: "Evaluate an expression in prefix notation",
		Long: `Eval computes an expression written in prefix (Polish) notation.
Binary operators are + - * ^, the unary operator ! is factorial.
The expression may be passed as a single argument or as separate tokens:

  bigint eval "* 10 + 2 3"
  bigint eval ^ 2 100

Tokens starting with '-' are read as flags, so put -- before an
expression that starts with the - operator or has negative operands:

  bigint eval -- - 10 -3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := a.calc.evaluate(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), z)
			return err
		},
	}
}

func newFactCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fact n",
		Short: "Compute the factorial of n",
		Long: `Fact prints n! for 0 <= n <= 4294967296.
Put -- before a negative n, otherwise it is read as a flag:

  bigint fact -- -5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.calc.parseSmall(args[0])
			if err != nil {
				return err
			}
			z, err := a.calc.factorial(n)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), z)
			return err
		},
	}
}

func newPowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pow base exp",
		Short: "Raise base to the power of exp",
		Long: `Pow prints base^exp, exp must not be negative.
Put -- before the operands when either one is negative,
otherwise it is read as a flag:

  bigint pow -- -2 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.calc.parse(args[0])
			if err != nil {
				return err
			}
			exp, err := a.calc.parseSmall(args[1])
			if err != nil {
				return err
			}
			z, err := a.calc.pow(x, exp)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), z)
			return err
		},
	}
}
