package logging

import "context"

// Telemetry emits structured pipeline events through the shared logger.
// Info-level events marked verbose are downgraded to debug so steady-state
// logs only carry outcomes, not every attempt.
type Telemetry struct {
	logger *Logger
}

func NewTelemetry(logger *Logger) *Telemetry {
	return &Telemetry{logger: logger}
}

func (t *Telemetry) Emit(ctx context.Context, event string, level Level, verbose bool, args ...any) {
	logger := Default()
	if t != nil && t.logger != nil {
		logger = t.logger
	}

	if verbose && level == LevelInfo {
		level = LevelDebug
	}

	switch level {
	case LevelDebug:
		logger.DebugContext(ctx, event, args...)
	case LevelInfo:
		logger.InfoContext(ctx, event, args...)
	case LevelWarn:
		logger.WarnContext(ctx, event, args...)
	default:
		logger.ErrorContext(ctx, event, args...)
	}
}
