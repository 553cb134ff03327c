// Package logger provides the thin logging surface the CLI uses for its
// --verbose mode. Nothing here is structured beyond a timestamp and level;
// the terminal is the only sink.
package logger

import (
	"fmt"
	"io"
	"time"
)

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// Nop discards all log messages.
type Nop struct{}

func (Nop) Debugf(string, ...any) {}
func (Nop) Infof(string, ...any)  {}
func (Nop) Errorf(string, ...any) {}

type writerLogger struct {
	w io.Writer
}

// New builds a logger that writes timestamped lines to w.
func New(w io.Writer) Logger {
	return writerLogger{w: w}
}

func (l writerLogger) write(level, format string, args ...any) {
	if l.w == nil {
		return
	}
	ts := time.Now().Format(time.RFC3339)
	fmt.Fprintf(l.w, "%s %-5s %s\n", ts, level, fmt.Sprintf(format, args...))
}

func (l writerLogger) Debugf(format string, args ...any) { l.write("DEBUG", format, args...) }
func (l writerLogger) Infof(format string, args ...any)  { l.write("INFO", format, args...) }
func (l writerLogger) Errorf(format string, args ...any) { l.write("ERROR", format, args...) }
