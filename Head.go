package iterable

// First returns the first element, and stops the Iterable after it.
func First[T any](i Iterable[T]) (T, bool) {
	var (
		first T
		ok    bool
	)
	i.Iter(func(v T) bool {
		first, ok = v, true
		return false
	})
	return first, ok
}

// Head takes the first n element, similarly how the coreutils "head" app works.
func Head[T any](i Iterable[T], n int) Func[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		var taken int
		i.Iter(func(v T) bool {
			taken++
			if !yield(v) {
				return false
			}
			return taken < n
		})
	}
}
