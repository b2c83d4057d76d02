package layout

import (
	"strings"

	"github.com/nahadgur/11PlusExamPapers/fonts"
)

// MeasureFunc returns the rendered width of text at the given size in
// points.
type MeasureFunc func(text string, size float64) float64

// Engine renders structured content (Markdown, HTML, LaTeX maths) into a
// line sequence, wrapping words by measured width instead of character
// count.
type Engine struct {
	DefaultFontSize float64
	MaxWidth        float64

	measure MeasureFunc
	lines   []Line
}

// Option configures an Engine.
type Option func(*Engine)

// WithFontSize sets the body text size.
func WithFontSize(size float64) Option {
	return func(e *Engine) { e.DefaultFontSize = size }
}

// WithMaxWidth sets the usable column width in points.
func WithMaxWidth(width float64) Option {
	return func(e *Engine) { e.MaxWidth = width }
}

// WithMeasurer replaces the default Helvetica metrics with another width
// function, e.g. a fonts.Measurer.
func WithMeasurer(fn MeasureFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.measure = fn
		}
	}
}

// NewEngine creates a layout engine with optional configuration. The default
// column matches the writer's A4 geometry.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		DefaultFontSize: DefaultFontSize,
		MaxWidth:        595.28 - 2*48,
		measure:         fonts.Helvetica.Width,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Lines returns the accumulated line sequence.
func (e *Engine) Lines() []Line { return e.lines }

// Reset discards accumulated lines so the engine can be reused.
func (e *Engine) Reset() { e.lines = nil }

func (e *Engine) emit(text string, size float64, bold bool) {
	e.lines = append(e.lines, Line{Text: text, Size: size, Bold: bold})
}

func (e *Engine) headingScale(level int) float64 {
	switch {
	case level <= 1:
		return 2.0
	case level == 2:
		return 1.5
	default:
		return 1.25
	}
}

func (e *Engine) renderHeading(text string, level int) {
	size := e.DefaultFontSize * e.headingScale(level)
	for _, s := range e.wrapMeasured(text, size, 0) {
		e.emit(s, size, true)
	}
}

func (e *Engine) renderParagraph(text string) {
	for _, s := range e.wrapMeasured(text, e.DefaultFontSize, 0) {
		e.emit(s, 0, false)
	}
	e.emit("", 0, false)
}

func (e *Engine) renderListItem(text string) {
	const bullet = "• "
	indent := e.measure(bullet, e.DefaultFontSize)
	segs := e.wrapMeasured(text, e.DefaultFontSize, indent)
	for i, s := range segs {
		if i == 0 {
			e.emit(bullet+s, 0, false)
			continue
		}
		e.emit("  "+s, 0, false)
	}
}

// wrapMeasured greedily packs words so each line's measured width stays
// within MaxWidth minus the given indent.
func (e *Engine) wrapMeasured(text string, size, indent float64) []string {
	limit := e.MaxWidth - indent
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	cur := words[0]
	for _, w := range words[1:] {
		if e.measure(cur+" "+w, size) > limit {
			out = append(out, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	return append(out, cur)
}
