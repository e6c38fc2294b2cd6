// Package logger configures log/slog for the module's programs and carries
// per-call logging context (subsystem, run id, muting) through context.Context.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/amp-container/envutil"
)

// Default subsystem name, set by ConfigureLogging.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// It's considered good practice to use unexported custom types for context keys.
type contextKey string

const (
	loggerKey    contextKey = "logger"
	muteKey      contextKey = "mute"
	subsystemKey contextKey = "subsystem"
	runIdKey     contextKey = "run_id"
)

// ErrInvalidLogOutput is returned when an invalid log output destination is specified.
var ErrInvalidLogOutput = errors.New("invalid log output")

// Fatal logs an error message and exits the application.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)

	os.Exit(1)
}

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// WithOutput overrides the destination chosen from LOG_OUTPUT.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ConfigureLoggingWithOptions configures logging for the application.
// It returns the default logger.
// This function is thread-safe but modifies global state, so concurrent calls
// will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{
		Level: opts.MinLevel,
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Third party packages may still use the old log package; route it
	// through the same handler at a fixed level.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// ConfigureLogging configures logging from src (the process environment when
// src is nil). Recognized keys:
//
//   - LOG_JSON: bool, default false
//   - LOG_LEVEL: slog level, default info
//   - LEGACY_LOG_LEVEL: level for the standard log package, default info
//   - LOG_OUTPUT: "stdout" (default) or "stderr"
func ConfigureLogging(app string, src envutil.Source, opts ...Option) (*slog.Logger, error) {
	logJSON, jsonErr := envutil.Bool(src, "LOG_JSON", envutil.Default(false)).Value()
	minLevel, levelErr := envutil.SlogLevel(src, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	legacyLevel, legacyErr := envutil.SlogLevel(src, "LEGACY_LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()

	output, outputErr := envutil.Map(envutil.String(src, "LOG_OUTPUT", envutil.Default("stdout")),
		func(outName string) (io.Writer, error) {
			switch outName {
			case "stdout":
				return os.Stdout, nil
			case "stderr":
				return os.Stderr, nil
			default:
				return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName)
			}
		}).Value()

	if err := errors.Join(jsonErr, levelErr, legacyErr, outputErr); err != nil {
		return nil, err
	}

	options := Options{
		Subsystem:   app,
		JSON:        logJSON,
		MinLevel:    minLevel,
		LegacyLevel: legacyLevel,
		Output:      output,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options), nil
}
