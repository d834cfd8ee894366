// Package iterlog adds opt-in structured logging to iterable pipelines.
//
// The core iterable package never logs on its own.
// When a pipeline needs to be observed, wrap any stage with Tap,
// and every element passing through it is logged at debug level.
package iterlog

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"go.llib.dev/iterable"
	"go.llib.dev/iterable/internal/errorkit"
)

const (
	FieldIndex   = "index"
	FieldValue   = "value"
	FieldCount   = "count"
	FieldStopped = "stopped"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

const ErrInvalidFormat errorkit.Error = "invalid log format"

// Tap is a pass-through stage that logs every delivered element with its index.
// When the traversal is over, it logs the number of delivered elements,
// and whether the consumer stopped early.
func Tap[T any](i iterable.Iterable[T], logger zerolog.Logger, msg string) iterable.Func[T] {
	return func(yield func(T) bool) {
		var (
			count   int
			stopped bool
		)
		i.Iter(func(v T) bool {
			logger.Debug().
				Int(FieldIndex, count).
				Interface(FieldValue, v).
				Msg(msg)
			count++
			if !yield(v) {
				stopped = true
			}
			return !stopped
		})
		logger.Debug().
			Int(FieldCount, count).
			Bool(FieldStopped, stopped).
			Msg(msg + " finished")
	}
}

// New creates a logger that writes to w in the given format, filtered by level.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), err
	}
	if w == nil {
		w = os.Stdout
	}
	switch strings.ToLower(format) {
	case FormatJSON:
	case FormatConsole, "pretty":
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	default:
		return zerolog.Nop(), ErrInvalidFormat.F("%q", format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// WithLogger attaches the logger to the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger attached to the context,
// or a disabled logger when there is none.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
