package iterable

// Foldl reduces the Iterable from left to right into a single value.
// It starts with the initial value, then replaces it with the result of combine for every element.
func Foldl[R, T any](i Iterable[T], initial R, combine func(R, T) R) R {
	var acc = initial
	i.Iter(func(v T) bool {
		acc = combine(acc, v)
		return true
	})
	return acc
}

// FoldlErr is the failable version of Foldl.
// The first error stops the traversal and it is returned as is,
// together with the zero value, since the partial result is discarded.
func FoldlErr[R, T any](i Iterable[T], initial R, combine func(R, T) (R, error)) (R, error) {
	var (
		acc = initial
		err error
	)
	i.Iter(func(v T) bool {
		acc, err = combine(acc, v)
		return err == nil
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return acc, nil
}

// ToList materialise every element of the Iterable into a slice, in delivery order.
func ToList[T any](i Iterable[T]) []T {
	return Foldl(i, make([]T, 0), func(vs []T, v T) []T {
		return append(vs, v)
	})
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](i Iterable[T]) int {
	return Foldl(i, 0, func(total int, _ T) int {
		return total + 1
	})
}
