package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is a typed key/value pair attached to a log entry.
type Field = zap.Field

// String constructs a string field.
func String(key, value string) Field { return zap.String(key, value) }

// Int constructs an int field.
func Int(key string, value int) Field { return zap.Int(key, value) }

// Int64 constructs an int64 field.
func Int64(key string, value int64) Field { return zap.Int64(key, value) }

// Bool constructs a bool field.
func Bool(key string, value bool) Field { return zap.Bool(key, value) }

// Duration constructs a duration field.
func Duration(key string, value time.Duration) Field { return zap.Duration(key, value) }

// Error constructs a field carrying an error under the key "error".
func Error(err error) Field { return zap.Error(err) }

// Strings constructs a field carrying a slice of strings.
func Strings(key string, values []string) Field { return zap.Strings(key, values) }

// Any constructs a field with the best available representation of the value.
func Any(key string, value any) Field { return zap.Any(key, value) }
