package fonts

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Measurer measures text by shaping it against a real font face, giving
// kerning-aware widths for the rich layout front-ends. The core-font Metrics
// tables remain the source of truth for Helvetica output; the measurer is
// used where content is authored in Markdown or HTML and a closer estimate
// of rendered width pays off.
type Measurer struct {
	face   *gofont.Face
	shaper shaping.HarfbuzzShaper
}

// NewMeasurer builds a measurer backed by the bundled Go Regular face.
func NewMeasurer() (*Measurer, error) {
	face, err := gofont.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse measurement face: %w", err)
	}
	return &Measurer{face: face}, nil
}

// Width returns the advance width of text at the given size in points.
func (m *Measurer) Width(text string, size float64) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	if size <= 0 {
		size = 12
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      fixed.Int26_6(size * 64),
		Script:    language.Latin,
		Language:  language.DefaultLanguage(),
	}
	output := m.shaper.Shape(input)
	var total fixed.Int26_6
	for _, g := range output.Glyphs {
		total += g.XAdvance
	}
	return float64(total) / 64.0
}
