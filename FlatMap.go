package iterable

// FlatMap converts every element into an Iterable, and yields all of its values
// before it moves on to the next element.
// Converting into an Option is a single pass filter and map,
// while converting into a Slice allows one to many expansion.
func FlatMap[To any, From any, Inner Iterable[To]](i Iterable[From], convert func(From) Inner) Func[To] {
	return func(yield func(To) bool) {
		var stopped bool
		i.Iter(func(v From) bool {
			convert(v).Iter(func(o To) bool {
				if !yield(o) {
					stopped = true
				}
				return !stopped
			})
			return !stopped
		})
	}
}
