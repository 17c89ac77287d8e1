package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

type Field struct {
	Key   string
	Value any
}

func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type logfmtLogger struct {
	out    io.Writer
	level  Level
	fields []Field
	mu     *sync.Mutex
}

func New(out io.Writer, level Level) Logger {
	if out == nil {
		out = os.Stderr
	}
	return &logfmtLogger{out: out, level: level, mu: &sync.Mutex{}}
}

func Nop() Logger {
	return &logfmtLogger{out: io.Discard, level: Error, mu: &sync.Mutex{}}
}

func (l *logfmtLogger) With(fields ...Field) Logger {
	if l == nil {
		return Nop()
	}
	return &logfmtLogger{
		out:    l.out,
		level:  l.level,
		fields: append(append([]Field{}, l.fields...), fields...),
		mu:     l.mu,
	}
}

func (l *logfmtLogger) Debug(msg string, fields ...Field) { l.log(Debug, msg, fields...) }
func (l *logfmtLogger) Info(msg string, fields ...Field)  { l.log(Info, msg, fields...) }
func (l *logfmtLogger) Warn(msg string, fields ...Field)  { l.log(Warn, msg, fields...) }
func (l *logfmtLogger) Error(msg string, fields ...Field) { l.log(Error, msg, fields...) }

func (l *logfmtLogger) log(level Level, msg string, fields ...Field) {
	if l == nil || level < l.level {
		return
	}
	all := make([]Field, 0, len(l.fields)+len(fields)+3)
	all = append(all, Field{Key: "ts", Value: time.Now().UTC().Format(time.RFC3339Nano)})
	all = append(all, Field{Key: "level", Value: levelString(level)})
	all = append(all, Field{Key: "msg", Value: msg})
	all = append(all, l.fields...)
	all = append(all, fields...)

	l.mu.Lock()
	defer l.mu.Unlock()
	for i, field := range all {
		if i > 0 {
			_, _ = io.WriteString(l.out, " ")
		}
		_, _ = io.WriteString(l.out, field.Key)
		_, _ = io.WriteString(l.out, "=")
		_, _ = io.WriteString(l.out, formatValue(field.Value))
	}
	_, _ = io.WriteString(l.out, "\n")
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return quoteIfNeeded(v)
	case error:
		return quoteIfNeeded(v.Error())
	case time.Duration:
		return quoteIfNeeded(v.String())
	case fmt.Stringer:
		return quoteIfNeeded(v.String())
	case bool:
		return strconv.FormatBool(v)
	default:
		return quoteIfNeeded(fmt.Sprintf("%v", v))
	}
}

func quoteIfNeeded(value string) string {
	if value == "" {
		return `""`
	}
	if strings.ContainsAny(value, " \t\n\r\"=") {
		return strconv.Quote(value)
	}
	return value
}

func levelString(level Level) string {
	switch level {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}
