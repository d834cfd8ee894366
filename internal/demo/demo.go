// Package demo builds the sample pipelines that the iterdemo command prints.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"go.llib.dev/iterable"
	"go.llib.dev/iterable/pkg/iterlog"
)

type Result struct {
	Name   string
	Output string
}

// Run evaluates every sample pipeline over the 0..size-1 range.
// Each source is wrapped with iterlog.Tap, so a debug level logger shows the element flow.
func Run(size int, logger zerolog.Logger) []Result {
	source := func(name string) iterable.Iterable[int] {
		return iterlog.Tap[int](iterable.Times(size), logger.With().Str("pipeline", name).Logger(), "element")
	}

	var results []Result
	add := func(name string, out any) {
		results = append(results, Result{Name: name, Output: fmt.Sprint(out)})
	}

	add("map", iterable.ToList[int](iterable.Map[int](source("map"), func(n int) int { return n * 2 })))

	var pairs []string
	iterable.Enumerate[uint](iterable.Map[uint](source("enumerate"), func(n int) uint { return uint(n) })).
		Iter(func(i int, v uint) bool {
			pairs = append(pairs, fmt.Sprintf("%d:%d", i, v))
			return true
		})
	add("enumerate", strings.Join(pairs, " "))

	add("filter", iterable.ToList[int](iterable.Filter[int](source("filter"), func(n int) bool { return n%2 == 1 })))

	add("flat_map/option", iterable.ToList[int](iterable.FlatMap[int](source("flat_map/option"), func(n int) iterable.Option[int] {
		return iterable.OptionOf(n, n%2 == 0)
	})))

	add("flat_map/slice", iterable.ToList[int](iterable.FlatMap[int](source("flat_map/slice"), func(n int) iterable.Slice[int] {
		vs := make(iterable.Slice[int], 0, n)
		iterable.Repeat(n, func(int) { vs = append(vs, n) })
		return vs
	})))

	add("foldl/sum", iterable.Foldl[int](source("foldl/sum"), 0, func(acc, n int) int { return acc + n }))

	var repeated []int
	iterable.Repeat(size, func(i int) { repeated = append(repeated, i*2) })
	add("repeat", repeated)

	return results
}

// Print writes the results as aligned "name  output" lines.
func Print(w io.Writer, results []Result) error {
	var width int
	for _, r := range results {
		width = max(width, len(r.Name))
	}
	return iterable.ForEach[Result](iterable.Slice[Result](results), func(r Result) error {
		_, err := fmt.Fprintf(w, "%-*s  %s\n", width, r.Name, r.Output)
		return errors.Wrapf(err, "print %s", r.Name)
	})
}
