package iterable

// Concat yields the elements of every given Iterable, in the argument order.
func Concat[T any](is ...Iterable[T]) Func[T] {
	if len(is) == 0 {
		return Empty[T]()
	}
	return func(yield func(T) bool) {
		var stopped bool
		for _, i := range is {
			i.Iter(func(v T) bool {
				if !yield(v) {
					stopped = true
				}
				return !stopped
			})
			if stopped {
				return
			}
		}
	}
}
