package envutil

import (
	"os"
)

// Source looks up raw configuration values by key.
type Source interface {
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(key string) (string, bool)

// Lookup calls f(key).
func (f SourceFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// Environment reads from the process environment.
var Environment Source = SourceFunc(os.LookupEnv) //nolint:gochecknoglobals

// FromMap returns a Source backed by a fixed map. The map is copied.
func FromMap(values map[string]string) Source {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}

	return SourceFunc(func(key string) (string, bool) {
		v, ok := m[key]

		return v, ok
	})
}

// Layered returns a Source that consults each source in order and returns
// the first value found. Nil sources are skipped.
func Layered(sources ...Source) Source {
	return SourceFunc(func(key string) (string, bool) {
		for _, src := range sources {
			if src == nil {
				continue
			}

			if v, ok := src.Lookup(key); ok {
				return v, true
			}
		}

		return "", false
	})
}
