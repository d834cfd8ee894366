package iterable_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/iterable"
	"go.llib.dev/iterable/iterablecontract"
)

func ExampleRepeat() {
	var c []int
	iterable.Repeat(5, func(i int) {
		c = append(c, i*2)
	})
	fmt.Println(c)
	// Output: [0 2 4 6 8]
}

func TestRepeat(t *testing.T) {
	t.Run("blk is called with every index in increasing order", func(t *testing.T) {
		var got []int
		iterable.Repeat(5, func(i int) { got = append(got, i) })
		require.Equal(t, []int{0, 1, 2, 3, 4}, got)
	})

	for _, times := range []int{0, -1, -42} {
		t.Run(fmt.Sprintf("times=%d calls nothing", times), func(t *testing.T) {
			iterable.Repeat(times, func(int) { t.Fatal("unexpected call") })
		})
	}
}

func TestTimes(t *testing.T) {
	t.Run("yields the same indexes as Repeat", func(t *testing.T) {
		var viaRepeat []int
		iterable.Repeat(7, func(i int) { viaRepeat = append(viaRepeat, i) })
		require.Equal(t, viaRepeat, iterable.ToList[int](iterable.Times(7)))
	})

	t.Run("negative n is empty", func(t *testing.T) {
		require.Empty(t, iterable.ToList[int](iterable.Times(-3)))
	})

	iterablecontract.Iterable[int](func(tb testing.TB) iterablecontract.Subject[int] {
		return iterablecontract.Subject[int]{
			Iterable: iterable.Times(5),
			Expected: []int{0, 1, 2, 3, 4},
		}
	}).Test(t)
}
