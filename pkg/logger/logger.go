package logger

import "fmt"

// Printf-style wrappers over the structured logger, for bootstrap code that
// logs before request-scoped fields exist.

// Info logs a formatted info message
func Info(format string, args ...interface{}) {
	zlog.Info().Msg(fmt.Sprintf(format, args...))
}

// Warn logs a formatted warning message
func Warn(format string, args ...interface{}) {
	zlog.Warn().Msg(fmt.Sprintf(format, args...))
}

// Error logs a formatted error message
func Error(format string, args ...interface{}) {
	zlog.Error().Msg(fmt.Sprintf(format, args...))
}

// Fatal logs a formatted message and exits
func Fatal(format string, args ...interface{}) {
	zlog.Fatal().Msg(fmt.Sprintf(format, args...))
}
