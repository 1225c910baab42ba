// Provides the leveled logger interface used across the application.
package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// StdLogger writes info-level messages to stdout and errors to stderr.
// Debug output is suppressed unless enabled.
type StdLogger struct {
	out   *log.Logger
	err   *log.Logger
	debug bool
}

// New creates a StdLogger. debug turns on Debug output.
func New(debug bool) *StdLogger {
	return &StdLogger{
		out:   log.New(os.Stdout, "", log.LstdFlags),
		err:   log.New(os.Stderr, "", log.LstdFlags),
		debug: debug,
	}
}

func (l *StdLogger) Debug(msg string, args ...any) {
	if !l.debug {
		return
	}
	l.out.Println("DEBUG: " + format(msg, args))
}

func (l *StdLogger) Info(msg string, args ...any) {
	l.out.Println("INFO: " + format(msg, args))
}

func (l *StdLogger) Warn(msg string, args ...any) {
	l.out.Println("WARN: " + format(msg, args))
}

func (l *StdLogger) Error(msg string, args ...any) {
	l.err.Println("ERROR: " + format(msg, args))
}

// format renders key-value pairs after the message, e.g.
// "rotation complete deleted=3 kept=12".
func format(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	if len(args)%2 != 0 {
		fmt.Fprintf(&b, " %v", args[len(args)-1])
	}
	return b.String()
}
