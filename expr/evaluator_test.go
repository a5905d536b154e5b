package expr

import (
	"bytes"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/dateset"
	"github.com/hoyle1974/dateset/telemetry"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) civil.Date {
	return civil.Date{Year: year, Month: month, Day: day}
}

func between(y1 int, m1 time.Month, d1 int, y2 int, m2 time.Month, d2 int) dateset.DateSet {
	return dateset.Between(date(y1, m1, d1), date(y2, m2, d2))
}

func TestEval(t *testing.T) {
	e := NewEvaluator()
	require.NoError(t, e.Define("jul", "2021-07-01..2021-07-31"))
	require.NoError(t, e.Define("aug", "2021-08-01..2021-08-31"))
	require.NoError(t, e.Define("sep", "2021-09-01..2021-09-30"))

	tests := []struct {
		name   string
		source string
		want   dateset.DateSet
	}{
		{"single day", "2021-08-15", dateset.Single(date(2021, 8, 15))},
		{"range", "2021-08-01..2021-08-31", between(2021, 8, 1, 2021, 8, 31)},
		{"open end", "2021-08-01..", dateset.OnOrAfter(date(2021, 8, 1))},
		{"open start", "..2021-08-01", dateset.OnOrBefore(date(2021, 8, 1))},
		{"reversed range", "2021-09-01..2021-07-31", between(2021, 9, 1, 2021, 7, 31)},
		{"adjacent union", "aug + sep", between(2021, 8, 1, 2021, 9, 30)},
		{"pipe union", "aug | sep", between(2021, 8, 1, 2021, 9, 30)},
		{"difference", "jul + aug + sep - aug", dateset.FromList(between(2021, 7, 1, 2021, 7, 31), between(2021, 9, 1, 2021, 9, 30))},
		{"intersection", "(jul + aug) & (aug + sep)", between(2021, 8, 1, 2021, 8, 31)},
		{"left associative", "jul + aug - aug + sep", dateset.FromList(between(2021, 7, 1, 2021, 7, 31), between(2021, 9, 1, 2021, 9, 30))},
		{"grouping", "jul + (aug - aug) + sep", dateset.FromList(between(2021, 7, 1, 2021, 7, 31), between(2021, 9, 1, 2021, 9, 30))},
		{"day minus range", "2021-08-15 - aug", dateset.New()},
		{"range minus day", "aug - 2021-08-15", dateset.FromList(between(2021, 8, 1, 2021, 8, 14), between(2021, 8, 16, 2021, 8, 31))},
		{"complement", "not aug", between(2021, 9, 1, 2021, 7, 31)},
		{"all", "all", dateset.AllTime()},
		{"none", "none", dateset.New()},
		{"all minus none", "all - none", dateset.AllTime()},
		{"whitespace", "\taug\n+\r\nsep ", between(2021, 8, 1, 2021, 9, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Eval(tt.source)
			require.NoError(t, err)
			require.NoError(t, got.Validate())
			require.True(t, tt.want.Equal(got), "want:\n%s\ngot:\n%s", tt.want, got)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	e := NewEvaluator()

	tests := []struct {
		name   string
		source string
		target error
	}{
		{"empty", "", ErrSyntax},
		{"dangling operator", "2021-08-01 +", ErrSyntax},
		{"missing paren", "(2021-08-01", ErrSyntax},
		{"extra paren", "2021-08-01)", ErrSyntax},
		{"bad character", "2021-08-01 * 2021-08-02", ErrSyntax},
		{"bad date", "2021-02-30", ErrSyntax},
		{"not a date", "20210801", ErrSyntax},
		{"no bounds", "..", ErrSyntax},
		{"two terms", "2021-08-01 2021-08-02", ErrSyntax},
		{"unknown name", "holidays", ErrUnknownName},
		{"unknown name in group", "(2021-08-01 + holidays)", ErrUnknownName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Eval(tt.source)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.target), "%v", err)
		})
	}

	_, err := e.Eval("0000-12-31")
	require.True(t, errors.Is(err, dateset.ErrInvalidRange), "%v", err)
	require.True(t, errors.Is(err, ErrSyntax), "%v", err)
}

func TestBind(t *testing.T) {
	e := NewEvaluator()
	for _, name := range []string{"", "all", "not", "none", "1st", "a-b", "a b"} {
		err := e.Bind(name, dateset.New())
		require.True(t, errors.Is(err, ErrInvalidName), "%q", name)
	}

	aug := between(2021, 8, 1, 2021, 8, 31)
	require.NoError(t, e.Bind("aug_2021", aug))

	// The binding is a copy.
	aug.Add(dateset.On(date(2021, 9, 1)))
	got, ok := e.Lookup("aug_2021")
	require.True(t, ok)
	require.Equal(t, 31, got.DayCount())

	err := e.Define("broken", "aug_2021 +")
	require.True(t, errors.Is(err, ErrSyntax))
	_, ok = e.Lookup("broken")
	require.False(t, ok)

	require.Len(t, e.Bindings(), 1)
}

func TestRebindInvalidatesResults(t *testing.T) {
	e := NewEvaluator()
	require.NoError(t, e.Define("x", "2021-08-01"))

	first, err := e.Eval("x + 2021-08-02")
	require.NoError(t, err)
	require.Equal(t, 2, first.DayCount())

	require.NoError(t, e.Define("x", "2021-08-01..2021-08-10"))
	second, err := e.Eval("x + 2021-08-02")
	require.NoError(t, err)
	require.Equal(t, 10, second.DayCount())
}

func TestCacheAndTelemetry(t *testing.T) {
	ClearCache()
	metrics := telemetry.NewMemoryMetrics()
	var logs bytes.Buffer
	e := NewEvaluator(
		WithMetrics(metrics),
		WithLogger(telemetry.NewWriterLogger(&logs, true)),
		WithCacheTTL(time.Minute),
	)

	first, err := e.Eval("2021-08-01..2021-08-31")
	require.NoError(t, err)
	require.Equal(t, int64(0), Stats().Hits.Load())

	// Mutating a result must not leak into the cache.
	first.Remove(dateset.On(date(2021, 8, 15)))

	second, err := e.Eval("2021-08-01..2021-08-31")
	require.NoError(t, err)
	require.Equal(t, 31, second.DayCount())
	require.Equal(t, int64(1), Stats().Hits.Load())

	// A second evaluator shares parsed literals but not results.
	other := NewEvaluator()
	_, err = other.Eval("2021-08-01..2021-08-31")
	require.NoError(t, err)
	require.Equal(t, int64(2), Stats().Hits.Load())

	require.Equal(t, int64(2), metrics.Count("expr.evaluations"))
	require.Equal(t, int64(1), metrics.Count("expr.cache.hits"))
	require.Contains(t, logs.String(), "cache hit")
	require.Contains(t, Stats().String(), "Hits: 2")

	_, err = e.Eval("nope")
	require.Error(t, err)
	require.Contains(t, logs.String(), "error: evaluating \"nope\"")
}
