package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvnum/internal/config"
)

// defaultConfig loads the configuration from a clean environment.
func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)

	return cfg
}

// harness runs dispatch with the given (or default) config and an observed logger.
func harness(t *testing.T, cfg *config.Config, args ...string) (code int, stdout, stderr string, logs *observer.ObservedLogs) {
	t.Helper()
	if cfg == nil {
		cfg = defaultConfig(t)
	}
	core, logs := observer.New(zapcore.DebugLevel)
	var out, errOut bytes.Buffer
	code = dispatch(&env{cfg: cfg, stdout: &out, stderr: &errOut, log: zap.New(core)}, args)

	return code, out.String(), errOut.String(), logs
}

func TestStats(t *testing.T) {
	code, out, _, logs := harness(t, nil, "stats", "-prec", "3", "2", "4", "4", "4", "5", "5", "7", "9")
	require.Equal(t, exitOK, code)
	assert.Equal(t, strings.Join([]string{
		"n 8", "sum 40", "mean 5", "std 2", "min 2", "max 9", "argmin 0", "argmax 7", "norm2 15.232",
	}, "\n")+"\n", out)

	done := logs.FilterMessage("done").All()
	require.Len(t, done, 1)
	assert.Equal(t, "stats", done[0].ContextMap()["cmd"])
}

func TestSort(t *testing.T) {
	code, out, _, _ := harness(t, nil, "sort", "3", "1", "2")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "1 2 3\n1 2 0\n", out)

	code, out, _, _ = harness(t, nil, "sort", "-reverse", "3", "1", "2")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "3 2 1\n0 2 1\n", out)
}

func TestLinspace(t *testing.T) {
	code, out, _, _ := harness(t, nil, "linspace", "-start", "0", "-stop", "1", "-num", "5")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "0 0.25 0.5 0.75 1\n", out)

	code, out, _, _ = harness(t, nil, "linspace", "-stop", "1", "-num", "5", "-exclusive", "-prec", "1")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "0 0.2 0.4 0.6 0.8\n", out)
}

func TestMatMul(t *testing.T) {
	for _, order := range []string{"row", "col"} {
		code, out, _, logs := harness(t, nil, "matmul", "-order", order, "-a", "1 2; 3 4", "-b", "0,1; 1,0")
		require.Equal(t, exitOK, code, order)
		assert.Equal(t, "2 1\n4 3\n", out)
		assert.Equal(t, 1, logs.FilterMessage("matmul").Len())
	}

	code, _, stderr, logs := harness(t, nil, "matmul", "-a", "1 2", "-b", "1 2")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stderr, "dimension mismatch")
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

// TestMatMul_OrderFromConfig: the configured order is the flag default.
func TestMatMul_OrderFromConfig(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Output.Order = config.OrderCol
	code, _, _, logs := harness(t, cfg, "matmul", "-a", "1", "-b", "2")
	require.Equal(t, exitOK, code)
	entry := logs.FilterMessage("matmul").All()
	require.Len(t, entry, 1)
	assert.Equal(t, "ColMajor", entry[0].ContextMap()["order"])
}

// TestRand_Seeded: equal seeds print equal matrices.
func TestRand_Seeded(t *testing.T) {
	_, a, _, _ := harness(t, nil, "rand", "-rows", "2", "-cols", "3", "-seed", "9")
	_, b, _, _ := harness(t, nil, "rand", "-rows", "2", "-cols", "3", "-seed", "9")
	_, c, _, _ := harness(t, nil, "rand", "-rows", "2", "-cols", "3", "-seed", "10", "-normal")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, strings.Split(strings.TrimSpace(a), "\n"), 2)
}

func TestCov(t *testing.T) {
	code, out, _, _ := harness(t, nil, "cov", "-x", "1 2; 2 4; 3 6")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "1 2\n2 4\n2 4\n", out)

	code, _, stderr, _ := harness(t, nil, "cov", "-x", "1 2")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stderr, "at least two rows")
}

func TestUsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want int
	}{
		{"no command", nil, exitUsage},
		{"unknown", []string{"fft"}, exitUsage},
		{"no operands", []string{"stats"}, exitUsage},
		{"bad flag", []string{"sort", "-nope"}, exitUsage},
		{"bad order", []string{"matmul", "-order", "diag", "-a", "1", "-b", "1"}, exitUsage},
		{"bad number", []string{"stats", "1", "x"}, exitFail},
		{"ragged", []string{"matmul", "-a", "1 2; 3", "-b", "1"}, exitFail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, stderr, _ := harness(t, nil, tc.args...)
			assert.Equal(t, tc.want, code)
			assert.Empty(t, out)
			assert.NotEmpty(t, stderr)
		})
	}
}

// TestUsage_ListsEnvironment: the usage text names every LVNUM_* variable.
func TestUsage_ListsEnvironment(t *testing.T) {
	code, _, stderr, _ := harness(t, nil)
	require.Equal(t, exitUsage, code)
	for _, key := range []string{"LVNUM_LOG_LEVEL", "LVNUM_LOG_DEV", "LVNUM_ORDER", "LVNUM_PRECISION", "LVNUM_SEED"} {
		assert.Contains(t, stderr, key)
	}
}

// TestRun_Env wires config and logging end to end.
func TestRun_Env(t *testing.T) {
	t.Setenv("LVNUM_PRECISION", "2")
	t.Setenv("LVNUM_LOG_LEVEL", "error")
	var out, errOut bytes.Buffer
	code := run([]string{"linspace", "-stop", "1", "-num", "4"}, &out, &errOut)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "0 0.33 0.67 1\n", out.String())

	t.Setenv("LVNUM_ORDER", "diagonal")
	assert.Equal(t, exitUsage, run([]string{"stats", "1"}, &out, &errOut))
}
