package iterable

import (
	"errors"

	"go.llib.dev/iterable/internal/errorkit"
)

// Break can be returned from a ForEach callback to stop the iteration without an error.
const Break errorkit.Error = `iterable:break`

// ForEach calls fn with every element.
// The first non nil error stops the iteration and returned as is, except Break.
func ForEach[T any](i Iterable[T], fn func(T) error) error {
	var err error
	i.Iter(func(v T) bool {
		err = fn(v)
		return err == nil
	})
	if errors.Is(err, Break) {
		return nil
	}
	return err
}
