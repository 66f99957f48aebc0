// Command lvnum runs small numeric jobs on the lvnum containers.
//
// Usage:
//
//	lvnum stats    [-prec N] x1 x2 ...
//	lvnum sort     [-reverse] x1 x2 ...
//	lvnum linspace -start A -stop B -num N [-exclusive]
//	lvnum matmul   -a "1 2; 3 4" -b "5; 6" [-order row|col]
//	lvnum rand     -rows R -cols C [-normal] [-seed S] [-order row|col]
//	lvnum cov      -x "1 2; 2 4; 3 6"
//
// Results go to stdout, structured logs to stderr. LVNUM_* environment
// variables (see internal/config) set the defaults that flags override.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvnum/array"
	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/internal/logging"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/numeric"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

var (
	errUsage      = errors.New("usage")
	errBadNumber  = errors.New("invalid number")
	errNoOperands = errors.New("no operands")
)

// command is one subcommand: it parses its own flags from args.
type command func(env *env, args []string) error

// env is the shared state handed to every subcommand.
type env struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

var commands = map[string]command{
	"stats":    runStats,
	"sort":     runSort,
	"linspace": runLinspace,
	"matmul":   runMatMul,
	"rand":     runRand,
	"cov":      runCov,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run loads configuration, builds the logger and dispatches.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "lvnum: %v\n", err)
		return exitUsage
	}
	logger, err := logging.New(cfg.LoggingConfig())
	if err != nil {
		fmt.Fprintf(stderr, "lvnum: logger: %v\n", err)
		return exitFail
	}
	defer func() { _ = logger.Sync() }()

	return dispatch(&env{cfg: cfg, stdout: stdout, stderr: stderr, log: logger.Logger}, args)
}

// dispatch selects and runs a subcommand, mapping errors to exit codes.
func dispatch(e *env, args []string) int {
	if len(args) == 0 {
		usage(e.stderr)
		return exitUsage
	}
	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(e.stderr, "lvnum: unknown command %q\n", name)
		usage(e.stderr)
		return exitUsage
	}

	log := e.log.With(zap.String("cmd", name))
	log.Debug("start", zap.Strings("args", rest))
	if err := guard(func() error { return cmd(&env{cfg: e.cfg, stdout: e.stdout, stderr: e.stderr, log: log}, rest) }); err != nil {
		log.Error("failed", zap.Error(err))
		fmt.Fprintf(e.stderr, "lvnum %s: %v\n", name, err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitFail
	}
	log.Info("done")

	return exitOK
}

// guard converts a library contract panic into an error.
func guard(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = perr
		}
	}()

	return f()
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: lvnum <stats|sort|linspace|matmul|rand|cov> [flags] [operands]")
	fmt.Fprintln(w, "environment:")
	if err := config.Usage(w); err != nil {
		fmt.Fprintf(w, "  (unavailable: %v)\n", err)
	}
}

// newFlags returns a flag set that reports to stderr and never exits.
func newFlags(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	return fs
}

// parseFlags parses args and marks any failure as a usage error.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	return nil
}

// orderFlag registers -order with the configured default.
func orderFlag(e *env, fs *flag.FlagSet) *string {
	return fs.String("order", e.cfg.Output.Order, "storage order: row or col")
}

// ---------- subcommands ----------

func runStats(e *env, args []string) error {
	fs := newFlags(e, "stats")
	prec := fs.Int("prec", e.cfg.Output.Precision, "decimal places (-1 = full)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	a, err := parseArray(fs.Args())
	if err != nil {
		return err
	}

	round := func(v float64) float64 { return roundTo(v, *prec) }
	rows := []struct {
		key string
		val any
	}{
		{"n", a.Len()},
		{"sum", round(a.Sum())},
		{"mean", round(a.Mean())},
		{"std", round(a.Std())},
		{"min", round(array.Min(a))},
		{"max", round(array.Max(a))},
		{"argmin", array.ArgMin(a)},
		{"argmax", array.ArgMax(a)},
		{"norm2", round(a.Norm2())},
	}
	for _, r := range rows {
		fmt.Fprintf(e.stdout, "%s %v\n", r.key, r.val)
	}
	e.log.Info("stats", zap.Int("n", a.Len()))

	return nil
}

func runSort(e *env, args []string) error {
	fs := newFlags(e, "sort")
	reverse := fs.Bool("reverse", false, "sort descending")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	a, err := parseArray(fs.Args())
	if err != nil {
		return err
	}
	perm := array.Sort(a, *reverse)
	fmt.Fprintln(e.stdout, a)
	fmt.Fprintln(e.stdout, formatInts(perm))

	return nil
}

func runLinspace(e *env, args []string) error {
	fs := newFlags(e, "linspace")
	start := fs.Float64("start", 0, "first value")
	stop := fs.Float64("stop", 1, "last value (or bound with -exclusive)")
	num := fs.Int("num", 5, "number of samples")
	exclusive := fs.Bool("exclusive", false, "exclude stop")
	prec := fs.Int("prec", e.cfg.Output.Precision, "decimal places (-1 = full)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *num < 0 {
		return fmt.Errorf("%w: -num must be >= 0", errUsage)
	}
	a := array.Linspace(*start, *stop, *num, !*exclusive)
	if *prec >= 0 {
		a = a.RoundTo(*prec)
	}
	fmt.Fprintln(e.stdout, a)

	return nil
}

func runMatMul(e *env, args []string) error {
	fs := newFlags(e, "matmul")
	lhs := fs.String("a", "", `left matrix, rows separated by ";"`)
	rhs := fs.String("b", "", "right matrix")
	orderName := orderFlag(e, fs)
	prec := fs.Int("prec", e.cfg.Output.Precision, "decimal places (-1 = full)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	order, err := config.ParseOrder(*orderName)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	a, err := parseMatrix(*lhs, order)
	if err != nil {
		return fmt.Errorf("-a: %w", err)
	}
	b, err := parseMatrix(*rhs, order)
	if err != nil {
		return fmt.Errorf("-b: %w", err)
	}

	c := a.MatMat(b)
	printMatrix(e.stdout, c, *prec)
	e.log.Info("matmul",
		zap.Ints("a", []int{a.Rows(), a.Cols()}),
		zap.Ints("b", []int{b.Rows(), b.Cols()}),
		zap.Stringer("order", c.Order()))

	return nil
}

func runRand(e *env, args []string) error {
	fs := newFlags(e, "rand")
	rows := fs.Int("rows", 2, "row count")
	cols := fs.Int("cols", 2, "column count")
	normal := fs.Bool("normal", false, "standard normal instead of uniform [0, 1)")
	seed := fs.Uint64("seed", e.cfg.Random.Seed, "PCG seed")
	orderName := orderFlag(e, fs)
	prec := fs.Int("prec", e.cfg.Output.Precision, "decimal places (-1 = full)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *rows < 0 || *cols < 0 {
		return fmt.Errorf("%w: -rows and -cols must be >= 0", errUsage)
	}
	order, err := config.ParseOrder(*orderName)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	opts := []matrix.Option{matrix.WithOrder(order), matrix.WithSource(rand.NewPCG(*seed, *seed))}
	var m *matrix.Matrix[float64]
	if *normal {
		m = matrix.RandN[float64](*rows, *cols, opts...)
	} else {
		m = matrix.Rand[float64](*rows, *cols, opts...)
	}
	printMatrix(e.stdout, m, *prec)
	e.log.Info("rand", zap.Uint64("seed", *seed), zap.Bool("normal", *normal))

	return nil
}

func runCov(e *env, args []string) error {
	fs := newFlags(e, "cov")
	data := fs.String("x", "", "observations, one row per observation")
	prec := fs.Int("prec", e.cfg.Output.Precision, "decimal places (-1 = full)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	x, err := parseMatrix(*data, matrix.RowMajor)
	if err != nil {
		return fmt.Errorf("-x: %w", err)
	}
	cov, means := matrix.Covariance(x)
	printMatrix(e.stdout, cov, *prec)
	fmt.Fprintln(e.stdout, array.FromSlice(means))

	return nil
}

// ---------- parsing & printing ----------

// parseArray parses operands as float64 values.
func parseArray(fields []string) (*array.Array[float64], error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %w", errUsage, errNoOperands)
	}
	out := array.WithCapacity[float64](len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q", errBadNumber, f)
		}
		out.Append(v)
	}

	return out, nil
}

// parseMatrix parses "1 2; 3 4" (commas also separate elements).
func parseMatrix(text string, order matrix.Order) (*matrix.Matrix[float64], error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %w", errUsage, errNoOperands)
	}
	lines := strings.Split(text, ";")
	rows := make([][]float64, 0, len(lines))
	for _, line := range lines {
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		a, err := parseArray(fields)
		if err != nil {
			return nil, err
		}
		rows = append(rows, a.Data())
	}

	var m *matrix.Matrix[float64]
	err := guard(func() error {
		m = matrix.FromRows(rows, matrix.WithOrder(order))
		return nil
	})

	return m, err
}

func printMatrix(w io.Writer, m *matrix.Matrix[float64], prec int) {
	if prec >= 0 {
		m = m.Clone().Apply(func(_, _ int, v float64) float64 { return numeric.RoundTo(v, prec) })
	}
	if s := m.String(); s != "" {
		fmt.Fprintln(w, s)
	}
}

func roundTo(v float64, prec int) float64 {
	if prec < 0 {
		return v
	}

	return numeric.RoundTo(v, prec)
}

func formatInts(ix []int) string {
	parts := make([]string, len(ix))
	for i, v := range ix {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
