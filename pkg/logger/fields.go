package logger

import "time"

// Common field constructors for structured logging

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration creates a duration field in milliseconds
func Duration(key string, d time.Duration) Field {
	return Field{Key: key, Value: d.Milliseconds()}
}

// DurationMs creates a duration field from milliseconds
func DurationMs(key string, ms int64) Field {
	return Field{Key: key, Value: ms}
}

// Any creates a field with any value
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// --- Domain-specific field helpers ---

// EntityType creates an entity_type field
func EntityType(name string) Field {
	return Field{Key: "entity_type", Value: name}
}

// Route creates a route field
func Route(route string) Field {
	return Field{Key: "route", Value: route}
}

// Cause creates a cause field for classified failures
func Cause(code string) Field {
	return Field{Key: "cause", Value: code}
}

// Component creates a component field
func Component(name string) Field {
	return Field{Key: "component", Value: name}
}

// Status creates a status field
func Status(status int) Field {
	return Field{Key: "status", Value: status}
}

// Method creates an HTTP method field
func Method(method string) Field {
	return Field{Key: "method", Value: method}
}

// Path creates an HTTP path field
func Path(path string) Field {
	return Field{Key: "path", Value: path}
}

// RemoteIP creates a remote_ip field
func RemoteIP(ip string) Field {
	return Field{Key: "remote_ip", Value: ip}
}

// Transport creates a transport field
func Transport(name string) Field {
	return Field{Key: "transport", Value: name}
}

// Email creates an email field
func Email(email string) Field {
	return Field{Key: "email", Value: email}
}

// Operation creates an operation field
func Operation(op string) Field {
	return Field{Key: "operation", Value: op}
}

// Count creates a count field
func Count(count int) Field {
	return Field{Key: "count", Value: count}
}
