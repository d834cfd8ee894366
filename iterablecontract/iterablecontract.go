// Package iterablecontract holds the testing suite that every Iterable producer must pass.
package iterablecontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iterable"
	"go.llib.dev/iterable/port/contract"
)

type Subject[T any] struct {
	Iterable iterable.Iterable[T]
	// Expected is the list of values that Iterable must deliver, in the given order.
	Expected []T
}

func Iterable[T any](mk contract.Make[Subject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	collect := func(i iterable.Iterable[T]) []T {
		var vs []T
		i.Iter(func(v T) bool {
			vs = append(vs, v)
			return true
		})
		return vs
	}

	thenDelivered := func(t *testcase.T, exp, got []T) {
		if len(exp) == 0 {
			assert.Empty(t, got)
			return
		}
		assert.Equal(t, exp, got)
	}

	s.Test("every element is delivered exactly once, in order", func(t *testcase.T) {
		sub := subject.Get(t)
		thenDelivered(t, sub.Expected, collect(sub.Iterable))
	})

	s.Test("iterating again delivers the same elements", func(t *testcase.T) {
		sub := subject.Get(t)
		_ = collect(sub.Iterable)
		thenDelivered(t, sub.Expected, collect(sub.Iterable))
	})

	s.Test("returning false from the callback stops the delivery", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Expected) == 0 {
			t.Skip("nothing to stop in an empty Iterable")
		}
		var calls int
		sub.Iterable.Iter(func(T) bool {
			calls++
			return false
		})
		assert.Equal(t, 1, calls)
	})

	s.Test("stopping after the n-th element delivers exactly the first n", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Expected) == 0 {
			t.Skip("nothing to stop in an empty Iterable")
		}
		n := t.Random.IntBetween(1, len(sub.Expected))
		var got []T
		sub.Iterable.Iter(func(v T) bool {
			got = append(got, v)
			return len(got) < n
		})
		assert.Equal(t, sub.Expected[:n], got)
	})

	return s.AsSuite("Iterable")
}
