package iterable

// Enumerate pairs every element with its zero based position in the delivery order.
// The counter belongs to a single traversal, iterating the result again starts from zero.
func Enumerate[T any](i Iterable[T]) Func2[int, T] {
	return func(yield func(int, T) bool) {
		var index int
		i.Iter(func(v T) bool {
			cont := yield(index, v)
			index++
			return cont
		})
	}
}
