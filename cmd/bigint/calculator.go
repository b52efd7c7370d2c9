package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"github.com/govalues/bigint"
)

// calculator evaluates expressions according to the resolved settings.
type calculator struct {
	lenient   bool
	workers   int
	threshold int
	log       *slog.Logger
}

// newCalculatorFromFlags combines the configuration file with the
// persistent flags of the root command.
// Flags that were set explicitly take precedence over the file.
func newCalculatorFromFlags(cmd *cobra.Command) (*calculator, error) {
	flags := cmd.Root().PersistentFlags()

	colorMode, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	if err := setColorMode(colorMode, os.Stdout); err != nil {
		return nil, err
	}

	level, err := flags.GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	format, err := flags.GetString("log-fmt")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-fmt flag: %w", err)
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return nil, err
	}

	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed("workers") {
		cfg.Mul.Workers, err = flags.GetInt("workers")
		if err != nil {
			return nil, fmt.Errorf("failed to get workers flag: %w", err)
		}
		if cfg.Mul.Workers < 1 {
			return nil, fmt.Errorf("--workers must be at least 1, got %v", cfg.Mul.Workers)
		}
	}
	if flags.Changed("lenient") {
		cfg.Parse.Lenient, err = flags.GetBool("lenient")
		if err != nil {
			return nil, fmt.Errorf("failed to get lenient flag: %w", err)
		}
	}

	logger.Debug("settings resolved",
		"config", path,
		"lenient", cfg.Parse.Lenient,
		"workers", cfg.Mul.Workers,
		"threshold", cfg.Mul.Threshold,
	)

	return &calculator{
		lenient:   cfg.Parse.Lenient,
		workers:   cfg.Mul.Workers,
		threshold: cfg.Mul.Threshold,
		log:       logger,
	}, nil
}

// parse converts a token to an integer.
func (c *calculator) parse(s string) (bigint.Int, error) {
	if c.lenient {
		return bigint.ParseLenient(s), nil
	}
	x, err := bigint.Parse(s)
	if err != nil {
		return bigint.Int{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return x, nil
}

// parseSmall converts a token to an int.
func (c *calculator) parseSmall(s string) (int, error) {
	x, err := c.parse(s)
	if err != nil {
		return 0, err
	}
	return toSmall(x)
}

// toSmall converts x to an int.
func toSmall(x bigint.Int) (int, error) {
	v, ok := x.Int64()
	if !ok {
		return 0, fmt.Errorf("%v does not fit in an int64", x)
	}
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0, fmt.Errorf("%v does not fit in an int: %w", x, err)
	}
	return n, nil
}

// mul returns x * y.
// The product is split across workers when both operands are long enough.
func (c *calculator) mul(ctx context.Context, x, y bigint.Int) (bigint.Int, error) {
	start := time.Now()
	parallel := c.workers > 1 && x.Len() >= c.threshold && y.Len() >= c.threshold

	var (
		z   bigint.Int
		err error
	)
	if parallel {
		z, err = x.MulParallel(ctx, y, c.workers)
		if err != nil {
			return bigint.Int{}, fmt.Errorf("multiplying: %w", err)
		}
	} else {
		z = x.Mul(y)
	}

	c.log.Debug("multiplied",
		"x_segments", x.Len(),
		"y_segments", y.Len(),
		"parallel", parallel,
		"elapsed", time.Since(start),
	)
	return z, nil
}

// pow returns x^exp.
func (c *calculator) pow(x bigint.Int, exp int) (bigint.Int, error) {
	start := time.Now()
	z, err := x.Pow(exp)
	if err != nil {
		return bigint.Int{}, err
	}
	c.log.Debug("raised to power", "exp", exp, "digits", z.Prec(), "elapsed", time.Since(start))
	return z, nil
}

// factorial returns n!.
func (c *calculator) factorial(n int) (bigint.Int, error) {
	start := time.Now()
	z, err := bigint.Factorial(n)
	if err != nil {
		return bigint.Int{}, err
	}
	c.log.Debug("computed factorial", "n", n, "digits", z.Prec(), "elapsed", time.Since(start))
	return z, nil
}

// evaluate computes an expression written in prefix (Polish) notation,
// for example "* 10 + 2 3".
// Binary operators are +, -, * and ^, the unary operator ! is factorial.
func (c *calculator) evaluate(ctx context.Context, input string) (bigint.Int, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return bigint.Int{}, fmt.Errorf("no tokens")
	}
	stack := make([]bigint.Int, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "^":
			stack, err = c.processOperator(ctx, stack, token)
		case "!":
			stack, err = c.processFactorial(stack)
		default:
			stack, err = c.processOperand(stack, token)
		}
		if err != nil {
			return bigint.Int{}, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	if len(stack) != 1 {
		return bigint.Int{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func (c *calculator) processOperator(ctx context.Context, stack []bigint.Int, token string) ([]bigint.Int, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var (
		result bigint.Int
		err    error
	)
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result, err = c.mul(ctx, left, right)
	case "^":
		var exp int
		exp, err = toSmall(right)
		if err == nil {
			result, err = c.pow(left, exp)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%v %s %v\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func (c *calculator) processFactorial(stack []bigint.Int) ([]bigint.Int, error) {
	if len(stack) < 1 {
		return nil, fmt.Errorf("not enough operands")
	}
	operand := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	n, err := toSmall(operand)
	if err != nil {
		return nil, err
	}
	result, err := c.factorial(n)
	if err != nil {
		return nil, err
	}
	return append(stack, result), nil
}

func (c *calculator) processOperand(stack []bigint.Int, token string) ([]bigint.Int, error) {
	x, err := c.parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, x), nil
}
