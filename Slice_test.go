package iterable_test

import (
	"fmt"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/iterable"
	"go.llib.dev/iterable/iterablecontract"
)

func ExampleSlice() {
	iterable.Of("a", "b", "c").Iter(func(v string) bool {
		fmt.Print(v)
		return true
	})
	// Output: abc
}

func TestSlice(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("elements are delivered from left to right", func(t *testcase.T) {
		assert.Equal(t, []int{42, 4, 2}, iterable.ToList[int](iterable.Slice[int]{42, 4, 2}))
	})

	s.Test("nil slice yields nothing", func(t *testcase.T) {
		var sl iterable.Slice[int]
		assert.Equal(t, 0, iterable.Count[int](sl))
	})

	s.Test("to_list on a materialised list reproduces it", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(0, 10), t.Random.String)
		list := iterable.ToList[string](iterable.Slice[string](vs))
		again := iterable.ToList[string](iterable.Slice[string](list))
		assert.Equal(t, list, again)
		if 0 < len(vs) {
			assert.Equal(t, vs, again)
		}
	})

	iterablecontract.Iterable[int](func(tb testing.TB) iterablecontract.Subject[int] {
		t := testcase.ToT(&tb)
		vs := random.Slice(t.Random.IntBetween(0, 12), t.Random.Int)
		return iterablecontract.Subject[int]{
			Iterable: iterable.Slice[int](vs),
			Expected: vs,
		}
	}).Test(t)
}
