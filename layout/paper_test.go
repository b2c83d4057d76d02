package layout

import (
	"strings"
	"testing"

	"github.com/nahadgur/11PlusExamPapers/paper"
)

func samplePaper() *paper.ExamPaper {
	return &paper.ExamPaper{
		Title:        "Sample",
		Subject:      "maths",
		Board:        "GL",
		TimeAllowed:  "45 minutes",
		Instructions: "Answer all questions. Show your working.",
		Questions: []paper.Question{
			{
				Text:          "What is 2+2?",
				Options:       []string{"3", "4", "5", "6"},
				CorrectAnswer: 1,
				Explanation:   "2+2=4",
			},
		},
	}
}

func findLine(lines []Line, text string) *Line {
	for i := range lines {
		if lines[i].Text == text {
			return &lines[i]
		}
	}
	return nil
}

func TestPaperLinesHeaderBlock(t *testing.T) {
	lines := PaperLines(samplePaper())
	if len(lines) < 6 {
		t.Fatalf("header block missing, only %d lines", len(lines))
	}
	if lines[0].Text != "11+ Exam Papers" {
		t.Fatalf("first line should be the brand line, got %q", lines[0].Text)
	}
	if lines[1].Text != "Sample" || !lines[1].Bold || lines[1].Size != 16 {
		t.Fatalf("title line wrong: %+v", lines[1])
	}
	if lines[2].Text != "maths • GL style" {
		t.Fatalf("subject line wrong: %q", lines[2].Text)
	}
	if lines[3].Text != "Time allowed: 45 minutes" {
		t.Fatalf("time line wrong: %q", lines[3].Text)
	}
	if lines[4].Text != "Questions: 1" {
		t.Fatalf("count line wrong: %q", lines[4].Text)
	}
	if lines[5].Text != "" {
		t.Fatalf("expected blank separator after header, got %q", lines[5].Text)
	}
}

func TestPaperLinesQuestionsAndAnswerKey(t *testing.T) {
	lines := PaperLines(samplePaper())

	if findLine(lines, "1. What is 2+2?") == nil {
		t.Fatal("numbered question line missing")
	}
	if findLine(lines, "B) 4") == nil {
		t.Fatal("lettered option line missing")
	}
	key := findLine(lines, "1. B")
	if key == nil {
		t.Fatal("answer key line missing")
	}
	if !key.Bold {
		t.Fatal("answer key line should be bold")
	}
	if findLine(lines, "Explanation: 2+2=4") == nil {
		t.Fatal("explanation line missing")
	}

	// Section order: Questions heading before Answer Key heading.
	qIdx, kIdx := -1, -1
	for i, l := range lines {
		switch l.Text {
		case "Questions":
			qIdx = i
		case "Answer Key":
			kIdx = i
		}
	}
	if qIdx < 0 || kIdx < 0 || kIdx < qIdx {
		t.Fatalf("section headings out of order: Questions=%d AnswerKey=%d", qIdx, kIdx)
	}
}

func TestPaperLinesPassageSection(t *testing.T) {
	p := samplePaper()
	lines := PaperLines(p)
	if findLine(lines, "Reading Passage") != nil {
		t.Fatal("passage heading must be absent when passage is empty")
	}

	p.Passage = "Once upon a time there was a very diligent student."
	lines = PaperLines(p)
	if findLine(lines, "Reading Passage") == nil {
		t.Fatal("passage heading missing")
	}
}

func TestPaperLinesWrapLongQuestion(t *testing.T) {
	p := samplePaper()
	p.Questions[0].Text = strings.Repeat("considerably wordy phrasing ", 8)
	lines := PaperLines(p)

	var questionLines []string
	inQuestion := false
	for _, l := range lines {
		if strings.HasPrefix(l.Text, "1. ") {
			inQuestion = true
		} else if strings.HasPrefix(l.Text, "A) ") {
			break
		} else if !inQuestion {
			continue
		}
		if inQuestion {
			questionLines = append(questionLines, l.Text)
		}
	}
	if len(questionLines) < 2 {
		t.Fatalf("long question should wrap to multiple lines, got %d", len(questionLines))
	}
	rejoined := strings.Join(questionLines, " ")
	want := "1. " + strings.Join(strings.Fields(p.Questions[0].Text), " ")
	if rejoined != want {
		t.Fatalf("wrapped question loses words:\n got %q\nwant %q", rejoined, want)
	}
	for _, s := range questionLines {
		if len(s) > DefaultWrapWidth {
			t.Fatalf("line exceeds wrap width: %q", s)
		}
	}
}

func TestPaperLinesNoBoardOmitsStyleSuffix(t *testing.T) {
	p := samplePaper()
	p.Board = ""
	lines := PaperLines(p)
	if lines[2].Text != "maths" {
		t.Fatalf("subject line should omit board suffix, got %q", lines[2].Text)
	}
}
