// Package iterable provides a push style iteration capability,
// and a set of generic combinators that are built on top of it.
//
// # Summary
//
// An Iterable is anything that can push its elements, one by one, to a callback.
// The producer drives the traversal, while the consumer only has to say whether it wants more.
// This decouples where the data comes from (a slice, an optional value, a generator function)
// from the code that consumes it, and allows pipelines to be composed
// without allocating intermediate containers.
//
// Combinators such as Map, Filter or FlatMap return a new Iterable stage
// that holds no elements, only a reference to its upstream.
// A terminal operation (ToList, Foldl, ForEach or a plain Iter call) drives the whole pipeline,
// and every consumption re-invokes the upstream producer.
//
// The callback returns a bool, just like the yield function of an iter.Seq.
// Returning false stops the traversal, and the stop signal travels up through every stage.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://pkg.go.dev/iter
package iterable

import "iter"

// Iterable is implemented by anything that can push its elements to a callback.
//
// Iter must call yield exactly once per element, in the source's natural order,
// and return when every element is delivered, or when yield returned false.
// After yield returned false, Iter must not call it again.
type Iterable[T any] interface {
	Iter(yield func(T) bool)
}

// Iterable2 is the two value form of Iterable, used for key-value like pairs.
type Iterable2[K, V any] interface {
	Iter(yield func(K, V) bool)
}

// Func turns a bare callback accepting function into an Iterable.
// It has the same underlying type as iter.Seq, so they can be converted into each other.
type Func[T any] func(yield func(T) bool)

// Iter implements the Iterable interface.
func (fn Func[T]) Iter(yield func(T) bool) {
	if fn == nil {
		return
	}
	fn(yield)
}

// Func2 turns a bare callback accepting function into an Iterable2.
type Func2[K, V any] func(yield func(K, V) bool)

// Iter implements the Iterable2 interface.
func (fn Func2[K, V]) Iter(yield func(K, V) bool) {
	if fn == nil {
		return
	}
	fn(yield)
}

// FromSeq wraps a standard library iterator.
func FromSeq[T any](seq iter.Seq[T]) Func[T] {
	return Func[T](seq)
}

// Seq exposes an Iterable as an iter.Seq, so it can be used in a for range loop.
func Seq[T any](i Iterable[T]) iter.Seq[T] {
	switch i := i.(type) {
	case nil:
		return func(yield func(T) bool) {}
	default:
		return i.Iter
	}
}

// Seq2 exposes an Iterable2 as an iter.Seq2.
func Seq2[K, V any](i Iterable2[K, V]) iter.Seq2[K, V] {
	switch i := i.(type) {
	case nil:
		return func(yield func(K, V) bool) {}
	default:
		return i.Iter
	}
}

// Generate adapts a generator which emits its values without asking whether the consumer wants more.
// Once the consumer stops, the remaining emits are dropped,
// but the generator itself still runs until it returns.
func Generate[T any](gen func(emit func(T))) Func[T] {
	return func(yield func(T) bool) {
		var stopped bool
		gen(func(v T) {
			if stopped {
				return
			}
			if !yield(v) {
				stopped = true
			}
		})
	}
}

// Empty iterable is used to represent nil result with Null object pattern
func Empty[T any]() Func[T] {
	return func(yield func(T) bool) {}
}
