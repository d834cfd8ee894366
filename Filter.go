package iterable

// Filter passes through only the elements for which the predicate returns true.
func Filter[T any](i Iterable[T], predicate func(T) bool) Func[T] {
	return func(yield func(T) bool) {
		i.Iter(func(v T) bool {
			if !predicate(v) {
				return true
			}
			return yield(v)
		})
	}
}
