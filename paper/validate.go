package paper

import (
	"fmt"
	"strings"
)

// ValidationError describes a structural defect in an inbound paper. It is
// surfaced at the HTTP boundary as a client error.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid paper: %s: %s", e.Field, e.Reason)
}

// Validate checks the required shape of a paper: title and subject must be
// present, the question list must be non-empty, and every question needs
// text, at least one option, and a correct-answer index that refers to one
// of its options. Blank optional fields are fine.
func (p *ExamPaper) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return &ValidationError{Field: "title", Reason: "required"}
	}
	if strings.TrimSpace(p.Subject) == "" {
		return &ValidationError{Field: "subject", Reason: "required"}
	}
	if len(p.Questions) == 0 {
		return &ValidationError{Field: "questions", Reason: "at least one question is required"}
	}
	for i, q := range p.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return &ValidationError{
				Field:  fmt.Sprintf("questions[%d].questionText", i),
				Reason: "required",
			}
		}
		if len(q.Options) == 0 {
			return &ValidationError{
				Field:  fmt.Sprintf("questions[%d].options", i),
				Reason: "at least one option is required",
			}
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return &ValidationError{
				Field:  fmt.Sprintf("questions[%d].correctAnswerIndex", i),
				Reason: fmt.Sprintf("must be between 0 and %d", len(q.Options)-1),
			}
		}
	}
	return nil
}
