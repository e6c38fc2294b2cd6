// Package envutil reads typed configuration values from the environment, or
// from any other key-value Source such as a YAML env file.
//
//	src := envutil.Layered(fileSource, envutil.Environment)
//	level, err := envutil.SlogLevel(src, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
package envutil

import (
	"log/slog"
	"strconv"
	"strings"
)

// Option is a function which modifies a Reader. It's used by functions like
// String and Bool so that the caller can provide defaults and validation.
type Option[T any] func(Reader[T]) Reader[T]

// Default provides a value for the Reader when the key is not set.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Validate runs f on the value. If f returns an error, the Reader carries it.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return Map(rdr, func(val T) (T, error) {
			return val, f(val)
		})
	}
}

func get(src Source, key string) Reader[string] {
	if src == nil {
		src = Environment
	}

	val, ok := src.Lookup(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the raw value of key.
func String(src Source, key string, opts ...Option[string]) Reader[string] {
	return apply(get(src, key), opts)
}

// Bool parses key with strconv.ParseBool.
func Bool(src Source, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(src, key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}), opts)
}

// Int parses key as a base-10 integer.
func Int(src Source, key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(src, key), func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}), opts)
}

// SlogLevel parses key as a slog level name ("debug", "info", "warn+2", ...).
func SlogLevel(src Source, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(src, key), func(s string) (slog.Level, error) {
		var level slog.Level

		err := level.UnmarshalText([]byte(strings.TrimSpace(s)))

		return level, err
	}), opts)
}

// List splits key on commas, trims each item and drops empty ones.
func List(src Source, key string, opts ...Option[[]string]) Reader[[]string] {
	return apply(Map(get(src, key), func(s string) ([]string, error) {
		return SplitList(s), nil
	}), opts)
}

// SplitList is the splitting rule used by List.
func SplitList(s string) []string {
	var out []string

	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
