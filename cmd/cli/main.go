package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/hoyle1974/dateset"
	"github.com/hoyle1974/dateset/expr"
	"github.com/hoyle1974/dateset/misc"
	"github.com/hoyle1974/dateset/telemetry"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("dateset", flag.ContinueOnError)
	flags.SetOutput(stderr)
	lets := flags.StringArrayP("let", "l", nil, "Bind a name to an expression, as name=expr (repeatable)")
	source := flags.StringP("eval", "e", "", "The expression to evaluate")
	contains := flags.StringArrayP("contains", "c", nil, "Report whether a YYYY-MM-DD date is in the result (repeatable)")
	intervals := flags.BoolP("intervals", "i", false, "Print each interval on its own line instead of the rendering")
	list := flags.Bool("list", false, "Print every binding in name order")
	verbose := flags.BoolP("verbose", "v", false, "Log debug output to stderr")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *source == "" && flags.NArg() > 0 {
		*source = strings.Join(flags.Args(), " ")
	}

	logger := telemetry.NewWriterLogger(stderr, *verbose)
	e := expr.NewEvaluator(expr.WithLogger(logger))

	for _, let := range *lets {
		name, body, ok := strings.Cut(let, "=")
		if !ok {
			logger.Error("bad --let", errors.Newf("expected name=expr, got %q", let))
			return 1
		}
		if err := e.Define(strings.TrimSpace(name), body); err != nil {
			logger.Error("bad --let", err)
			return 1
		}
	}

	if *list {
		misc.Range(e.Bindings())(func(name string, s dateset.DateSet) bool {
			fmt.Fprintf(stdout, "%s: %s\n", name, summary(s))
			return true
		})
	}

	if *source == "" {
		if *list {
			return 0
		}
		logger.Error("nothing to evaluate", errors.New("pass --eval or an expression"))
		return 2
	}

	result, err := e.Eval(*source)
	if err != nil {
		logger.Error("evaluation failed", err)
		return 1
	}
	if *verbose {
		if err := result.Validate(); err != nil {
			logger.Error("result is not canonical", err)
			return 1
		}
	}

	switch {
	case result.IsEmpty():
		fmt.Fprintln(stdout, "no dates")
	case *intervals:
		for iv := range result.Intervals() {
			fmt.Fprintln(stdout, iv)
		}
	default:
		fmt.Fprintln(stdout, result)
	}
	fmt.Fprintln(stdout, summary(result))

	for _, text := range *contains {
		d, err := civil.ParseDate(text)
		if err != nil {
			logger.Error("bad --contains", err)
			return 1
		}
		fmt.Fprintf(stdout, "%s: %t\n", d, result.ContainsDate(d))
	}

	logger.Debug(expr.Stats().String())
	return 0
}

func summary(s dateset.DateSet) string {
	return fmt.Sprintf("%s intervals, %s days", humanize.Comma(int64(s.Len())), humanize.Comma(int64(s.DayCount())))
}
