package iterable

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
//
// If convert panics, the traversal is aborted,
// and the elements delivered before that are not undone.
func Map[To any, From any](i Iterable[From], convert func(From) To) Func[To] {
	return func(yield func(To) bool) {
		i.Iter(func(v From) bool {
			return yield(convert(v))
		})
	}
}
