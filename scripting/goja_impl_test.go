package scripting

import (
	"context"
	"testing"
	"time"
)

const additionScript = `
var questions = [];
for (var i = 1; i <= 3; i++) {
	var a = 1 + randomInt(9);
	var b = 1 + randomInt(9);
	questions.push({
		questionText: "What is " + a + " + " + b + "?",
		options: [String(a + b - 1), String(a + b), String(a + b + 1), String(a + b + 2)],
		correctAnswerIndex: 1,
		explanation: a + " + " + b + " = " + (a + b)
	});
}
({
	title: "Mental Arithmetic Drill",
	subject: "maths",
	timeAllowed: "15 minutes",
	instructions: "Work quickly and carefully.",
	questions: questions
})
`

func TestGeneratePaper(t *testing.T) {
	e := NewEngine(42)
	p, err := e.GeneratePaper(context.Background(), additionScript)
	if err != nil {
		t.Fatalf("GeneratePaper: %v", err)
	}
	if p.Title != "Mental Arithmetic Drill" {
		t.Fatalf("unexpected title: %q", p.Title)
	}
	if len(p.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(p.Questions))
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("generated paper should validate: %v", err)
	}
}

func TestGeneratePaperDeterministicSeed(t *testing.T) {
	a, err := NewEngine(7).GeneratePaper(context.Background(), additionScript)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := NewEngine(7).GeneratePaper(context.Background(), additionScript)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if a.Questions[0].Text != b.Questions[0].Text {
		t.Fatalf("same seed should give same questions: %q vs %q",
			a.Questions[0].Text, b.Questions[0].Text)
	}
}

func TestGeneratePaperCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewEngine(1).GeneratePaper(ctx, `while (true) {}`)
	if err == nil {
		t.Fatal("expected interruption error")
	}
}

func TestGeneratePaperNoResult(t *testing.T) {
	_, err := NewEngine(1).GeneratePaper(context.Background(), `var x = 1;`)
	if err == nil {
		t.Fatal("expected error when script returns nothing")
	}
}

func TestGeneratePaperSyntaxError(t *testing.T) {
	_, err := NewEngine(1).GeneratePaper(context.Background(), `this is not javascript`)
	if err == nil {
		t.Fatal("expected error for invalid script")
	}
}
