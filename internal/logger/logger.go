package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level orders log severities
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

// VerboseChecker reports whether debug and info output is enabled
type VerboseChecker interface {
	IsVerbose() bool
}

// Logger writes component-tagged lines to stderr. Debug and Info are gated
// by the verbose checker; Warn and Error are always written.
type Logger struct {
	component      string
	verboseChecker VerboseChecker
	fields         []Field
	out            *output
}

// output is shared by a logger and every logger derived from it
type output struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// Field is a key-value pair appended to a log line
type Field struct {
	Key   string
	Value interface{}
}

// New creates a logger for component
func New(component string, verboseChecker VerboseChecker) *Logger {
	return &Logger{
		component:      component,
		verboseChecker: verboseChecker,
		out:            &output{w: os.Stderr, now: time.Now},
	}
}

// NewWithCallback creates a logger whose verbosity is decided by verboseCheck
func NewWithCallback(component string, verboseCheck func() bool) *Logger {
	return New(component, callbackChecker(verboseCheck))
}

type callbackChecker func() bool

func (c callbackChecker) IsVerbose() bool {
	return c != nil && c()
}

// SetOutput redirects this logger and all loggers derived from it
func (l *Logger) SetOutput(w io.Writer) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	l.out.w = w
}

// WithComponent derives a logger with a different component name
func (l *Logger) WithComponent(component string) *Logger {
	derived := *l
	derived.component = component
	return &derived
}

// With derives a logger that appends fields to every line
func (l *Logger) With(fields ...Field) *Logger {
	derived := *l
	derived.fields = append(append([]Field(nil), l.fields...), fields...)
	return &derived
}

// Verbose reports whether Debug and Info lines are written
func (l *Logger) Verbose() bool {
	return l.verboseChecker != nil && l.verboseChecker.IsVerbose()
}

// Debug logs when verbose
func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.Verbose() {
		l.write(LevelDebug, msg, nil, args...)
	}
}

// Info logs when verbose
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.Verbose() {
		l.write(LevelInfo, msg, nil, args...)
	}
}

// Warn always logs
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.write(LevelWarn, msg, nil, args...)
}

// Error always logs
func (l *Logger) Error(msg string, args ...interface{}) {
	l.write(LevelError, msg, nil, args...)
}

// DebugWithFields logs msg with extra fields when verbose
func (l *Logger) DebugWithFields(msg string, fields []Field, args ...interface{}) {
	if l.Verbose() {
		l.write(LevelDebug, msg, fields, args...)
	}
}

// InfoWithFields logs msg with extra fields when verbose
func (l *Logger) InfoWithFields(msg string, fields []Field, args ...interface{}) {
	if l.Verbose() {
		l.write(LevelInfo, msg, fields, args...)
	}
}

// Timed logs the elapsed time of an operation at debug level. Use as
// defer log.Timed("evaluate")().
func (l *Logger) Timed(operation string) func() {
	if !l.Verbose() {
		return func() {}
	}
	start := l.out.now()
	return func() {
		l.DebugWithFields("%s finished", []Field{Duration(l.out.now().Sub(start))}, operation)
	}
}

// write formats "[15:04:05.000] LEVEL [component] message [k=v ...]"
func (l *Logger) write(level Level, msg string, extra []Field, args ...interface{}) {
	component := l.component
	if component == "" {
		component = "main"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s [%s] ", l.out.now().Format("15:04:05.000"), level, component))
	if len(args) > 0 {
		b.WriteString(fmt.Sprintf(msg, args...))
	} else {
		b.WriteString(msg)
	}

	all := append(append([]Field(nil), l.fields...), extra...)
	if len(all) > 0 {
		parts := make([]string, 0, len(all))
		for _, f := range all {
			parts = append(parts, fmt.Sprintf("%s=%v", f.Key, f.Value))
		}
		b.WriteString(" [" + strings.Join(parts, " ") + "]")
	}
	b.WriteByte('\n')

	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	// Nowhere to report a failed log write
	_, _ = io.WriteString(l.out.w, b.String())
}

// F builds an arbitrary field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func Terms(n int) Field {
	return Field{Key: "terms", Value: n}
}

func Radians(x float64) Field {
	return Field{Key: "radians", Value: x}
}

func Count(value int) Field {
	return Field{Key: "count", Value: value}
}

func Duration(d time.Duration) Field {
	return Field{Key: "duration", Value: d}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}
