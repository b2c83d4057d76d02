// Package scripting runs paper-generator scripts: small JavaScript programs
// whose return value is an exam paper object. Scripts let maths drill papers
// and similar procedurally-built content come out of a template instead of a
// hand-written question bank.
package scripting

import (
	"context"

	"github.com/nahadgur/11PlusExamPapers/paper"
)

// Engine evaluates a generator script and returns the produced paper. The
// returned paper is decoded but not validated; callers validate before
// rendering.
type Engine interface {
	GeneratePaper(ctx context.Context, script string) (*paper.ExamPaper, error)
}
