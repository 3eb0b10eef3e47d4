// Package logging builds the zap logger every tool writes diagnostics with.
package logging

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level maps the CLI switches and configured level to a zap level.
// quiet wins over verbose; an unknown name falls back to warn.
func Level(name string, verbose, quiet bool) zapcore.Level {
	switch {
	case quiet:
		return zapcore.ErrorLevel
	case verbose:
		return zapcore.DebugLevel
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(name))); err != nil || name == "" {
		return zapcore.WarnLevel
	}
	return l
}

// New returns a console logger writing to w. Timestamps are omitted so
// stderr stays stable across runs.
func New(w io.Writer, level zapcore.Level, tool string) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.StacktraceKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core).Named(tool)
}
