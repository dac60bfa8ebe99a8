// Package rclog wraps github.com/charmbracelet/log into the small
// interface this repository threads through the engine and background
// services. Loggers are constructed and passed explicitly rather than
// read from a package global, so two independently-run pipelines never
// share mutable logging state (see SPEC_FULL.md's "global model caches
// belong to the instance" design note, which applies equally here).
package rclog

import (
	"io"
	"os"

	charm "github.com/charmbracelet/log"
)

// Logger is a thin wrapper over *charm.Logger exposing the subset of
// methods this repository calls, so call sites don't need to import
// charmbracelet/log directly.
type Logger struct {
	inner *charm.Logger
}

// New builds a Logger writing to w at the given level ("debug", "info",
// "warn", "error"). An empty level defaults to "info".
func New(w io.Writer, level string) *Logger {
	if w == nil {
		w = os.Stderr
	}
	l := charm.NewWithOptions(w, charm.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	switch level {
	case "debug":
		l.SetLevel(charm.DebugLevel)
	case "warn":
		l.SetLevel(charm.WarnLevel)
	case "error":
		l.SetLevel(charm.ErrorLevel)
	default:
		l.SetLevel(charm.InfoLevel)
	}
	return &Logger{inner: l}
}

// Default returns a Logger writing to stderr at info level.
func Default() *Logger { return New(os.Stderr, "info") }

// Discard returns a Logger that drops every message. Used as the
// zero-value substitute wherever a caller passes a nil *Logger.
func Discard() *Logger { return New(io.Discard, "error") }

// With returns a child logger with the given key/value pairs attached to
// every subsequent message, mirroring charmbracelet/log's own With.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	if l == nil {
		return Discard()
	}
	return &Logger{inner: l.inner.With(keyvals...)}
}

func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	if l == nil {
		return
	}
	l.inner.Debug(msg, keyvals...)
}

func (l *Logger) Info(msg string, keyvals ...interface{}) {
	if l == nil {
		return
	}
	l.inner.Info(msg, keyvals...)
}

func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	if l == nil {
		return
	}
	l.inner.Warn(msg, keyvals...)
}

func (l *Logger) Error(msg string, keyvals ...interface{}) {
	if l == nil {
		return
	}
	l.inner.Error(msg, keyvals...)
}
