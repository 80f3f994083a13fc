// Package logging provides the leveled console logger shared by the CLI
// and the pipeline workers.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes timestamped, leveled lines to a single sink. It is safe
// for concurrent use.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
	now     func() time.Time
}

// New returns a logger writing to out. Debug lines are emitted only when
// verbose is set.
func New(out io.Writer, verbose bool) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{out: out, verbose: verbose, now: time.Now}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, false)
}

func (l *Logger) line(level, text string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, ts+" ["+level+"] [imgopt] "+text+"\n")
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...any) {
	l.line("INFO", fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...any) {
	l.line("WARN", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...any) {
	l.line("ERROR", fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level when the logger is verbose.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", fmt.Sprintf(format, args...))
}
