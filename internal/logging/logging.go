// internal/logging/logging.go
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at level and above.
// Timestamps are left out so output is stable across runs.
func New(level zapcore.Level, w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// ParseLevel accepts zap level names (debug, info, warn, error, ...).
func ParseLevel(s string) (zapcore.Level, error) {
	var l zapcore.Level
	err := l.UnmarshalText([]byte(s))
	return l, err
}

// Effective applies the quiet flag: quiet runs only log errors.
func Effective(level zapcore.Level, quiet bool) zapcore.Level {
	if quiet && level < zapcore.ErrorLevel {
		return zapcore.ErrorLevel
	}
	return level
}

// Err logs the error message only. zap.Error adds an errorVerbose field
// (stack frames, wrap chains) for errors that implement fmt.Formatter.
func Err(err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.String("error", err.Error())
}
