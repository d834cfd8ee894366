package iterable

// Slice is a finite ordered sequence, which yields its elements from left to right.
type Slice[T any] []T

// Of is a shorthand to create a Slice from the listed values.
func Of[T any](vs ...T) Slice[T] { return Slice[T](vs) }

func (s Slice[T]) Iter(yield func(T) bool) {
	for _, v := range s {
		if !yield(v) {
			return
		}
	}
}
