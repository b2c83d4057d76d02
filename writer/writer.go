// Package writer serializes laid-out lines into a minimal two-font PDF byte
// stream by hand: content streams, object table, cross-reference table and
// trailer, with no PDF library.
package writer

import (
	"context"
	"io"

	"github.com/nahadgur/11PlusExamPapers/layout"
	"github.com/nahadgur/11PlusExamPapers/observability"
)

// Config carries the page geometry. All values are points.
type Config struct {
	PageWidth    float64
	PageHeight   float64
	MarginLeft   float64
	MarginTop    float64
	MarginBottom float64
	LineGap      float64
	FontSize     float64
}

// DefaultConfig returns the A4 geometry used for exam papers.
func DefaultConfig() Config {
	return Config{
		PageWidth:    595.28,
		PageHeight:   841.89,
		MarginLeft:   48,
		MarginTop:    56,
		MarginBottom: 56,
		LineGap:      3,
		FontSize:     layout.DefaultFontSize,
	}
}

// Writer emits a complete PDF document for a line sequence. Implementations
// never write partial output: the document is assembled in memory and copied
// to out in one call.
type Writer interface {
	Write(ctx context.Context, lines []layout.Line, out io.Writer) error
}

// WriterBuilder assembles a Writer.
type WriterBuilder struct {
	cfg    Config
	hasCfg bool
	log    observability.Logger
	tracer observability.Tracer
}

// WithConfig overrides the page geometry.
func (b *WriterBuilder) WithConfig(cfg Config) *WriterBuilder {
	b.cfg = cfg
	b.hasCfg = true
	return b
}

// WithLogger attaches a logger.
func (b *WriterBuilder) WithLogger(log observability.Logger) *WriterBuilder {
	b.log = log
	return b
}

// WithTracer attaches a tracer.
func (b *WriterBuilder) WithTracer(tracer observability.Tracer) *WriterBuilder {
	b.tracer = tracer
	return b
}

// Build returns the configured Writer.
func (b *WriterBuilder) Build() Writer {
	cfg := b.cfg
	if !b.hasCfg {
		cfg = DefaultConfig()
	}
	log := b.log
	if log == nil {
		log = observability.NopLogger{}
	}
	tracer := b.tracer
	if tracer == nil {
		tracer = observability.NopTracer()
	}
	return &impl{cfg: cfg, log: log, tracer: tracer}
}
