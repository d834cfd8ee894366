package iterable

// Option is an optional value.
// As an Iterable, it yields nothing when it is absent, and its single value when it is present.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf builds an Option from the "comma ok" idiom.
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr makes a nil pointer absent, and a non nil pointer present with the pointed value.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

// OrElse returns the value when present, otherwise the given fallback.
func (o Option[T]) OrElse(v T) T {
	if !o.ok {
		return v
	}
	return o.value
}

func (o Option[T]) Iter(yield func(T) bool) {
	if o.ok {
		yield(o.value)
	}
}
