// Package logger configures the application's structured logging.
//
// Logging uses zerolog. When a New Relic license key is configured the
// package also boots the agent and forwards application logs so traces
// and logs stay correlated; without a key everything degrades to plain
// local logging.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/kalitafoto/backend/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService owns the optional New Relic application instance.
// A nil application means observability is disabled.
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService initializes the New Relic agent from config.
// When no license key is set it returns a service with a nil app.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	if cfg.Observability == nil || cfg.Observability.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	nr := cfg.Observability.NewRelic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(nr.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(nr.DistributedTracingEnabled),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{"environment": cfg.Observability.Environment}
		},
	)
	if err != nil {
		return nil, err
	}

	return &LoggerService{app: app}, nil
}

// GetApplication returns the New Relic application, or nil when the
// agent is disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.app
}

// New builds the main application logger from config.
//
// Local env gets a human-friendly console writer; everything else gets
// JSON. When log forwarding is enabled the output is wrapped so the
// agent ships log lines alongside traces.
func New(cfg *config.Config, ls *LoggerService) zerolog.Logger {
	level := parseLevel(cfg.Observability.Logging.Level)

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" || cfg.Primary.Env == "local" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else if app := ls.GetApplication(); app != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		w := zerologWriter.New(os.Stdout, app)
		out = &w
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Logger()
}

// WithTraceContext returns a child logger annotated with the trace and
// span ids of the given transaction, so log lines can be matched to
// distributed traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}
	md := txn.GetTraceMetadata()
	return log.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}

// NewPgxLogger builds the logger handed to the pgx tracelog adapter.
// SQL logging is noisy, so it gets its own component tag.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel converts a zerolog level into the matching pgx
// tracelog level (tracelog uses its own ordering).
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6 // tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return 5 // tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return 4 // tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return 3 // tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return 2 // tracelog.LogLevelError
	default:
		return 1 // tracelog.LogLevelNone
	}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
