// Package logfmt is the structured logging helper shared by the cmd/
// entry points. The teacher's own src/log.go writes CSV trace files for
// offline analysis rather than an operator-facing log stream; our cmd/
// binaries need the latter, so this package wires the teacher's declared
// (but previously unused) github.com/charmbracelet/log dependency into
// that role instead.
package logfmt

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New builds a logger that writes styled key=value output to w, with the
// given minimum level name ("debug", "info", "warn", "error"; anything
// else defaults to "info").
func New(w io.Writer, level string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	l.SetLevel(parseLevel(level))
	return l
}

// Default returns a logger writing to stderr at info level, the logger
// cmd/decode-aprs and cmd/aprs-is-tap use; neither takes a level flag.
func Default() *log.Logger {
	return New(os.Stderr, "info")
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
