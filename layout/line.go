// Package layout turns exam papers and structured content (Markdown, HTML,
// LaTeX maths) into the ordered sequence of styled lines the PDF writer
// consumes. One Line maps to exactly one row in the rendered document.
package layout

import "strings"

// DefaultFontSize is the body text size in points.
const DefaultFontSize = 11.0

// DefaultWrapWidth is the column width in characters used when wrapping
// paper text for the core Helvetica output.
const DefaultWrapWidth = 92

// Line is one row of already-wrapped text. A zero Size means
// DefaultFontSize; Bold selects the bold font resource in the writer.
type Line struct {
	Text string
	Size float64
	Bold bool
}

// Wrap splits text on embedded line breaks into paragraphs and greedily
// packs each paragraph's words onto lines of at most maxChars characters,
// counting one joining space per word. An empty paragraph yields a single
// empty line so intentional blank lines survive. Words longer than maxChars
// are kept whole.
func Wrap(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultWrapWidth
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if len(cur)+1+len(w) > maxChars {
				out = append(out, cur)
				cur = w
				continue
			}
			cur += " " + w
		}
		out = append(out, cur)
	}
	return out
}
