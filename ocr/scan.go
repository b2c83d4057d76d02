package ocr

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nahadgur/11PlusExamPapers/paper"
)

var (
	questionStart = regexp.MustCompile(`^\s*(\d+)[.)]\s+(.*\S)\s*$`)
	optionStart   = regexp.MustCompile(`^\s*([A-H])[.)]\s+(.*\S)\s*$`)
)

// ParseScan turns a recognized page transcript into draft questions. A line
// starting with "1." or "1)" opens a question, "A)" through "H)" lines add
// options, and anything else continues the preceding text. The drafts carry
// no answer key; CorrectAnswer stays zero for a human pass.
func ParseScan(text string) []paper.Question {
	var (
		questions []paper.Question
		cur       *paper.Question
		inOption  bool
	)
	for _, line := range strings.Split(text, "\n") {
		if m := questionStart.FindStringSubmatch(line); m != nil {
			questions = append(questions, paper.Question{Text: m[2]})
			cur = &questions[len(questions)-1]
			inOption = false
			continue
		}
		if cur == nil {
			continue
		}
		if m := optionStart.FindStringSubmatch(line); m != nil {
			cur.Options = append(cur.Options, m[2])
			inOption = true
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if inOption && len(cur.Options) > 0 {
			cur.Options[len(cur.Options)-1] += " " + trimmed
			continue
		}
		cur.Text += " " + trimmed
	}
	return questions
}

// ScanPaper recognizes a set of scanned page images with the given engine
// and assembles the drafts into one paper. Page transcripts are parsed in
// order so question numbering carries across pages.
func ScanPaper(ctx context.Context, engine Engine, pages []Input, opts ...InputOption) (*paper.ExamPaper, error) {
	if engine == nil {
		engine = DefaultEngine()
	}
	var transcript strings.Builder
	for i, in := range pages {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if in.ID == "" {
			in.ID = fmt.Sprintf("page-%d", i+1)
		}
		for _, opt := range opts {
			opt(&in)
		}
		res, err := engine.Recognize(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("recognize %s: %w", in.ID, err)
		}
		transcript.WriteString(res.PlainText)
		transcript.WriteByte('\n')
	}
	p := &paper.ExamPaper{
		Title:     "Scanned paper",
		Questions: ParseScan(transcript.String()),
	}
	p.EnsureID()
	return p, nil
}
