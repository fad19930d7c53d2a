package logger

import (
	"context"
)

// Context keys for storing values
type contextKey string

const (
	// ContextKeyRequestID is the context key for request ID
	ContextKeyRequestID contextKey = "request_id"
	// ContextKeyRoute is the context key for the matched route pattern
	ContextKeyRoute contextKey = "route"
	// ContextKeyLogger is the context key for logger
	ContextKeyLogger contextKey = "logger"
)

// WithRequestIDContext adds request ID to context
func WithRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// WithRouteContext adds the matched route pattern to context
func WithRouteContext(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, ContextKeyRoute, route)
}

// WithLoggerContext adds logger to context
func WithLoggerContext(ctx context.Context, log Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, log)
}

// GetRequestID gets request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// GetRoute gets the matched route pattern from context
func GetRoute(ctx context.Context) string {
	if route, ok := ctx.Value(ContextKeyRoute).(string); ok {
		return route
	}
	return ""
}

// FromContext gets logger from context or returns global logger
func FromContext(ctx context.Context) Logger {
	if log, ok := ctx.Value(ContextKeyLogger).(Logger); ok {
		return log
	}
	return Get()
}
