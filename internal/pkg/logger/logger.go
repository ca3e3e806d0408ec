// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. It supports configuring the log level and
// destination via functional options, emits JSON logs (to stderr by default,
// so command output on stdout stays readable), enriches every entry with the
// trace and span ids carried by the context, and adds an OTEL bridge core
// when a telemetry logger provider is available.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/gabapcia/walletsync/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// logger is the global SugaredLogger instance. It is initialized once by Init.
	logger *zap.SugaredLogger

	// initOnce ensures the logger is only configured a single time.
	initOnce sync.Once

	// nop is used until Init runs, so library code never dereferences nil.
	nop = zap.NewNop().Sugar()
)

// config holds configuration options for the logger.
type config struct {
	level          string             // the minimum log level (debug, info, warn, error, panic, fatal)
	output         io.Writer          // destination of the encoded entries
	loggerProvider log.LoggerProvider // receives a copy of every entry when set
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
// Example levels: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput sets the writer the JSON entries are written to.
// Default: os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithLoggerProvider forwards entries to lp through the otelzap bridge.
// Default: telemetry.LoggerProvider().
func WithLoggerProvider(lp log.LoggerProvider) Option {
	return func(c *config) {
		c.loggerProvider = lp
	}
}

// Init configures the global logger. By default, it logs JSON to stderr at
// the "info" level. If an OpenTelemetry LoggerProvider is registered via
// telemetry.Init, entries at or above the level are also forwarded to it.
// Calling Init multiple times has no effect after the first successful
// initialization.
//
// Returns an error if parsing the log level fails.
func Init(opts ...Option) error {
	cfg := config{
		level:          "info",
		output:         os.Stderr,
		loggerProvider: telemetry.LoggerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(cfg.output),
				level,
			),
		}

		if cfg.loggerProvider != nil {
			cores = append(cores, bridgeCore(cfg.loggerProvider, level))
		}

		logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// bridgeCore forwards entries to lp, dropping those below level.
func bridgeCore(lp log.LoggerProvider, level zapcore.Level) zapcore.Core {
	var core zapcore.Core = otelzap.NewCore(telemetry.InstrumentationName, otelzap.WithLoggerProvider(lp))
	if leveled, err := zapcore.NewIncreaseLevelCore(core, level); err == nil {
		core = leveled
	}
	return core
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return get().Sync()
}

func get() *zap.SugaredLogger {
	if logger == nil {
		return nop
	}
	return logger
}

// withTrace appends trace.id and span.id when ctx carries a valid span.
func withTrace(ctx context.Context, keysAndValues []any) []any {
	if ctx == nil {
		return keysAndValues
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return keysAndValues
	}

	return append(keysAndValues,
		"trace.id", sc.TraceID().String(),
		"span.id", sc.SpanID().String(),
	)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	get().Debugw(msg, withTrace(ctx, keysAndValues)...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	get().Infow(msg, withTrace(ctx, keysAndValues)...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	get().Warnw(msg, withTrace(ctx, keysAndValues)...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	get().Errorw(msg, withTrace(ctx, keysAndValues)...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	get().Fatalw(msg, withTrace(ctx, keysAndValues)...)
}
