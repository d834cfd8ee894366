package iterable_test

import (
	"fmt"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iterable"
	"go.llib.dev/iterable/iterablecontract"
)

func ExampleConcat() {
	all := iterable.Concat[int](iterable.Of(1, 2), iterable.None[int](), iterable.Some(3), iterable.Times(2))
	fmt.Println(iterable.ToList[int](all))
	// Output: [1 2 3 0 1]
}

func TestConcat(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("no source is empty", func(t *testcase.T) {
		assert.Empty(t, iterable.ToList[int](iterable.Concat[int]()))
	})

	s.Test("stopping in the first source skips the rest", func(t *testcase.T) {
		var tailCalled bool
		tail := iterable.Func[int](func(yield func(int) bool) {
			tailCalled = true
			yield(99)
		})

		var got []int
		iterable.Concat[int](iterable.Of(1, 2, 3), tail).Iter(func(v int) bool {
			got = append(got, v)
			return v < 2
		})
		assert.Equal(t, []int{1, 2}, got)
		assert.False(t, tailCalled)
	})

	iterablecontract.Iterable[string](func(tb testing.TB) iterablecontract.Subject[string] {
		return iterablecontract.Subject[string]{
			Iterable: iterable.Concat[string](iterable.Of("a"), iterable.Empty[string](), iterable.Of("b", "c")),
			Expected: []string{"a", "b", "c"},
		}
	}).Test(t)
}
