package layout

import (
	"fmt"
	"strings"

	"github.com/nahadgur/11PlusExamPapers/paper"
)

const (
	brandLine   = "11+ Exam Papers"
	brandSize   = 9.0
	titleSize   = 16.0
	headingSize = 12.0
)

// PaperLines renders a validated paper into its full line sequence: header
// block, instructions, optional reading passage, the numbered questions with
// lettered options, and the answer key. The mapping is deterministic; the
// same paper always yields the same lines.
func PaperLines(p *paper.ExamPaper) []Line {
	var lines []Line
	add := func(text string, size float64, bold bool) {
		lines = append(lines, Line{Text: text, Size: size, Bold: bold})
	}
	wrapped := func(text string) {
		for _, s := range Wrap(text, DefaultWrapWidth) {
			add(s, 0, false)
		}
	}
	blank := func() { add("", 0, false) }

	add(brandLine, brandSize, false)
	add(p.Title, titleSize, true)
	meta := p.Subject
	if p.Board != "" {
		meta += " • " + p.Board + " style"
	}
	add(meta, 0, false)
	add("Time allowed: "+p.TimeAllowed, 0, false)
	add(fmt.Sprintf("Questions: %d", len(p.Questions)), 0, false)
	blank()

	add("Instructions", headingSize, true)
	wrapped(p.Instructions)
	blank()

	if strings.TrimSpace(p.Passage) != "" {
		add("Reading Passage", headingSize, true)
		wrapped(p.Passage)
		blank()
	}

	add("Questions", headingSize, true)
	for i, q := range p.Questions {
		wrapped(fmt.Sprintf("%d. %s", i+1, q.Text))
		for j, opt := range q.Options {
			wrapped(fmt.Sprintf("%s) %s", paper.AnswerLetter(j), opt))
		}
		blank()
	}

	add("Answer Key", headingSize, true)
	for i, q := range p.Questions {
		add(fmt.Sprintf("%d. %s", i+1, paper.AnswerLetter(q.CorrectAnswer)), 0, true)
		if strings.TrimSpace(q.Explanation) != "" {
			wrapped("Explanation: " + q.Explanation)
		}
	}
	return lines
}
