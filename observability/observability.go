// Package observability defines the logging and tracing hooks threaded
// through the paper pipeline. Callers plug in their own implementations;
// everything defaults to no-ops.
package observability

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
)

// Logger is a leveled, structured logger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field is one structured key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field      { return Field{key, value} }
func Int(key string, value int) Field     { return Field{key, value} }
func Int64(key string, value int64) Field { return Field{key, value} }
func Error(key string, err error) Field   { return Field{key, err} }

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// stdLogger formats fields as key=value pairs onto a standard log.Logger.
type stdLogger struct {
	out   *log.Logger
	bound []Field
}

// NewStdLogger returns a Logger writing plain key=value lines to out. The
// CLI and the HTTP server use it; library code should stay on the interface.
func NewStdLogger(out io.Writer) Logger {
	return &stdLogger{out: log.New(out, "", log.LstdFlags)}
}

func (l *stdLogger) emit(level, msg string, fields []Field) {
	var sb strings.Builder
	sb.WriteString(level)
	sb.WriteByte(' ')
	sb.WriteString(msg)
	for _, f := range append(l.bound, fields...) {
		fmt.Fprintf(&sb, " %s=%v", f.Key, f.Value)
	}
	l.out.Print(sb.String())
}

func (l *stdLogger) Debug(msg string, fields ...Field) { l.emit("DEBUG", msg, fields) }
func (l *stdLogger) Info(msg string, fields ...Field)  { l.emit("INFO", msg, fields) }
func (l *stdLogger) Warn(msg string, fields ...Field)  { l.emit("WARN", msg, fields) }
func (l *stdLogger) Error(msg string, fields ...Field) { l.emit("ERROR", msg, fields) }

func (l *stdLogger) With(fields ...Field) Logger {
	bound := append(append([]Field(nil), l.bound...), fields...)
	return &stdLogger{out: l.out, bound: bound}
}

// Tracer provides tracing hooks around pipeline stages.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span is one traced operation.
type Span interface {
	SetTag(key string, value interface{})
	SetError(err error)
	Finish()
}

type nopTracer struct{}

func (nopTracer) StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, nopSpan{}
}

// NopTracer returns a tracer that does nothing.
func NopTracer() Tracer { return nopTracer{} }

type nopSpan struct{}

func (nopSpan) SetTag(string, interface{}) {}
func (nopSpan) SetError(error)             {}
func (nopSpan) Finish()                    {}

// Standard metric names emitted by the pipeline.
const (
	MetricLayoutTime = "paper.layout.duration"
	MetricWriteTime  = "paper.write.duration"
	MetricPageCount  = "paper.pages.count"
	MetricLineCount  = "paper.lines.count"
	MetricScriptTime = "paper.script.duration"
	MetricScanTime   = "scan.recognize.duration"
)
