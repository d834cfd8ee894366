package iterable

// Repeat calls blk with 0, 1, ... times-1, in increasing order.
func Repeat(times int, blk func(i int)) {
	for i := 0; i < times; i++ {
		blk(i)
	}
}

// Times is the Iterable form of Repeat.
func Times(n int) Func[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
