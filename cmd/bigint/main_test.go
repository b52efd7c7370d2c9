package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/bigint"
)

// run executes the root command with args and returns what it wrote
// to stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--color=off"}, args...))
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bigint.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEval(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
			want string
		}{
			{"single operand", []string{"eval", "42"}, "42"},
			{"single argument", []string{"eval", "* 10 + 2 3"}, "50"},
			{"separate tokens", []string{"eval", "^", "2", "100"}, "1267650600228229401496703205376"},
			{"negative operands", []string{"eval", "--", "-", "10", "-3"}, "13"},
			{"subtraction order", []string{"eval", "--", "- 12345678901234567890 12345678901234567891"}, "-1"},
			{"factorial", []string{"eval", "! 20"}, "2432902008176640000"},
			{"nested", []string{"eval", "+ ! 5 * 999999999999999999 999999999999999999"}, "999999999999999998000000000000000121"},
			{"zero power", []string{"eval", "^ 0 0"}, "1"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				stdout, _, err := run(t, tt.args...)
				require.NoError(t, err)
				assert.Equal(t, tt.want+"\n", stdout)
			})
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
			want string
		}{
			{"not enough operands", []string{"eval", "+ 1"}, "not enough operands"},
			{"too many operands", []string{"eval", "1 2"}, "expected exactly one item"},
			{"invalid operand", []string{"eval", "+ 1 12a34"}, "invalid integer"},
			{"negative exponent", []string{"eval", "--", "^ 2 -1"}, "negative exponent"},
			{"negative factorial", []string{"eval", "--", "! -1"}, "factorial of negative number"},
			{"huge exponent", []string{"eval", "^ 2 100000000000000000000"}, "does not fit"},
			{"blank", []string{"eval", "   "}, "no tokens"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, _, err := run(t, tt.args...)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.want)
			})
		}
	})
}

func TestLenient(t *testing.T) {
	_, _, err := run(t, "eval", "+ 12a34 1")
	require.Error(t, err)

	stdout, _, err := run(t, "--lenient", "eval", "+ 12a34 1")
	require.NoError(t, err)
	assert.Equal(t, "35\n", stdout)

	path := writeConfig(t, "[parse]\nlenient = true\n")
	stdout, _, err = run(t, "--config", path, "eval", "+ 12a34 1")
	require.NoError(t, err)
	assert.Equal(t, "35\n", stdout)

	_, _, err = run(t, "--config", path, "--lenient=false", "eval", "+ 12a34 1")
	require.Error(t, err, "explicit flag must override the configuration file")
}

func TestFact(t *testing.T) {
	stdout, _, err := run(t, "fact", "25")
	require.NoError(t, err)
	assert.Equal(t, "15511210043330985984000000\n", stdout)

	_, _, err = run(t, "fact", "--", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "factorial of negative number")

	_, _, err = run(t, "fact", "x")
	require.Error(t, err)

	_, _, err = run(t, "fact", "-5")
	require.Error(t, err, "negative operand without -- is parsed as a flag")

	stdout, _, err = run(t, "fact", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bigint fact -- -5")
}

func TestPow(t *testing.T) {
	stdout, _, err := run(t, "pow", "--", "-3", "41")
	require.NoError(t, err)
	assert.Equal(t, "-36472996377170786403\n", stdout)

	stdout, _, err = run(t, "pow", "--", "-2", "3")
	require.NoError(t, err)
	assert.Equal(t, "-8\n", stdout)

	_, _, err = run(t, "pow", "-2", "3")
	require.Error(t, err, "negative operand without -- is parsed as a flag")

	stdout, _, err = run(t, "pow", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bigint pow -- -2 3")

	_, _, err = run(t, "pow", "--", "2", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative exponent")
}

func TestInfo(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		stdout, _, err := run(t, "info", "12345678901000")
		require.NoError(t, err)
		assert.Contains(t, stdout, "value:")
		assert.Contains(t, stdout, "12345678901000")
		assert.Contains(t, stdout, "digits:")
		assert.Contains(t, stdout, "14\n")
		assert.Contains(t, stdout, "trailing zeros:")
		assert.Contains(t, stdout, "3\n")
		assert.Contains(t, stdout, "segments:")
		assert.Contains(t, stdout, "2\n")
	})

	t.Run("grouping", func(t *testing.T) {
		stdout, _, err := run(t, "info", "1"+strings.Repeat("0", 1234))
		require.NoError(t, err)
		assert.Contains(t, stdout, "1,235\n")
		assert.Contains(t, stdout, "1,234\n")
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := run(t, "info", "--format", "json", "--", "-1000000000")
		require.NoError(t, err)

		var got infoPayload
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, "-1000000000", got.Value.String())
		assert.Equal(t, -1, got.Sign)
		assert.Equal(t, 10, got.Digits)
		assert.Equal(t, 9, got.TrailingZeros)
		assert.Equal(t, []uint32{0, 1}, got.Segments)
	})

	t.Run("error", func(t *testing.T) {
		_, _, err := run(t, "info", "--format", "yaml", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bigint "+version+"\n", stdout)
}

func TestParallel(t *testing.T) {
	x := strings.Repeat("123456789", 40)
	y := strings.Repeat("987654321", 35)
	bx, ok := new(big.Int).SetString(x, 10)
	require.True(t, ok)
	by, ok := new(big.Int).SetString(y, 10)
	require.True(t, ok)
	want := new(big.Int).Mul(bx, by).String() + "\n"

	path := writeConfig(t, "[mul]\nthreshold = 2\n")

	sequential, _, err := run(t, "--config", path, "eval", "*", x, y)
	require.NoError(t, err)
	assert.Equal(t, want, sequential)

	parallel, stderr, err := run(t, "--config", path, "--workers", "4", "--log-level", "debug", "eval", "*", x, y)
	require.NoError(t, err)
	assert.Equal(t, want, parallel)
	assert.Contains(t, stderr, "parallel=true")
}

func TestLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "--log-fmt", "json", "fact", "10")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"computed factorial"`)

	_, stderr, err = run(t, "fact", "10")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestConfig(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("partial", func(t *testing.T) {
		cfg, err := loadConfig(writeConfig(t, "[mul]\nworkers = 8\n"))
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Mul.Workers)
		assert.Equal(t, 32, cfg.Mul.Threshold)
		assert.False(t, cfg.Parse.Lenient)
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
			want    string
		}{
			{"syntax", "[mul\n", "failed to parse TOML"},
			{"unknown key", "[mul]\nthreads = 2\n", "unknown key mul.threads"},
			{"workers", "[mul]\nworkers = 0\n", "workers must be at least 1"},
			{"threshold", "[mul]\nthreshold = 1\n", "threshold must be at least 2"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := loadConfig(writeConfig(t, tt.content))
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.want)
			})
		}

		_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
	})
}

func TestFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"color", []string{"--color=rainbow", "fact", "1"}, "unknown color mode"},
		{"log level", []string{"--log-level", "loud", "fact", "1"}, "unknown log level"},
		{"log format", []string{"--log-fmt", "xml", "fact", "1"}, "unknown log format"},
		{"workers", []string{"--workers", "0", "fact", "1"}, "--workers must be at least 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestToSmall(t *testing.T) {
	n, err := toSmall(bigint.New(-42))
	require.NoError(t, err)
	assert.Equal(t, -42, n)

	_, err = toSmall(bigint.MustParse("9223372036854775808"))
	require.Error(t, err)
}
