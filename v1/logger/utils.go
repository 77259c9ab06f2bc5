package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// convertToZapFields converts the variadic field maps and an optional error
// into a flat slice of zap fields.
func convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0)

	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}

	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	return zapFields
}

// withTraceContext appends trace_id and span_id fields when tracing is
// enabled and the context carries a valid span context.
func (l *LoggerClient) withTraceContext(ctx context.Context, zapFields []zap.Field) []zap.Field {
	if !l.tracingEnabled {
		return zapFields
	}

	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return zapFields
	}

	return append(zapFields,
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	)
}

// Debug logs a message at debug level with optional error and fields.
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, convertToZapFields(err, fields...)...)
}

// Info logs a message at info level with optional error and fields.
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, convertToZapFields(err, fields...)...)
}

// Warn logs a message at warn level with optional error and fields.
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, convertToZapFields(err, fields...)...)
}

// Error logs a message at error level with optional error and fields.
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, convertToZapFields(err, fields...)...)
}

// Fatal logs a message at fatal level and terminates the process.
func (l *LoggerClient) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, convertToZapFields(err, fields...)...)
}

// DebugWithContext logs at debug level, enriching the entry with trace
// identifiers from the context when tracing is enabled.
func (l *LoggerClient) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.withTraceContext(ctx, convertToZapFields(err, fields...))...)
}

// InfoWithContext logs at info level, enriching the entry with trace
// identifiers from the context when tracing is enabled.
func (l *LoggerClient) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.withTraceContext(ctx, convertToZapFields(err, fields...))...)
}

// WarnWithContext logs at warn level, enriching the entry with trace
// identifiers from the context when tracing is enabled.
func (l *LoggerClient) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.withTraceContext(ctx, convertToZapFields(err, fields...))...)
}

// ErrorWithContext logs at error level, enriching the entry with trace
// identifiers from the context when tracing is enabled.
func (l *LoggerClient) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.withTraceContext(ctx, convertToZapFields(err, fields...))...)
}
