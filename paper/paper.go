// Package paper defines the logical exam paper model that the layout and
// rendering pipeline consumes. Papers arrive as JSON from the HTTP boundary,
// from generator scripts, or from scanned-paper ingestion; decoding is
// deliberately tolerant so that malformed scalar fields degrade to blanks
// instead of failing the whole request.
package paper

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

// ExamPaper is the pre-rendering representation of one paper. It is treated
// as immutable once validated.
type ExamPaper struct {
	ID           string     `json:"id,omitempty"`
	Title        string     `json:"title"`
	Subject      string     `json:"subject"`
	Board        string     `json:"board,omitempty"`
	TimeAllowed  string     `json:"timeAllowed,omitempty"`
	Instructions string     `json:"instructions,omitempty"`
	Passage      string     `json:"passage,omitempty"`
	Questions    []Question `json:"questions"`
}

// Question is a single multiple-choice question. CorrectAnswer is the
// zero-based index into Options.
type Question struct {
	Text          string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswerIndex"`
	Explanation   string   `json:"explanation,omitempty"`
}

// EnsureID assigns a fresh UUID when the paper has none.
func (p *ExamPaper) EnsureID() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
}

// AnswerLetter returns the display letter for a zero-based option index:
// 0 is A, 1 is B, and so on. Negative indexes clamp to A.
func AnswerLetter(i int) string {
	if i < 0 {
		i = 0
	}
	return string(rune('A' + i))
}

// UnmarshalJSON decodes a paper while coercing scalar fields that are not
// strings (numbers, booleans, null) to a usable string value.
func (p *ExamPaper) UnmarshalJSON(data []byte) error {
	var shadow struct {
		ID           json.RawMessage `json:"id"`
		Title        json.RawMessage `json:"title"`
		Subject      json.RawMessage `json:"subject"`
		Board        json.RawMessage `json:"board"`
		TimeAllowed  json.RawMessage `json:"timeAllowed"`
		Instructions json.RawMessage `json:"instructions"`
		Passage      json.RawMessage `json:"passage"`
		Questions    []Question      `json:"questions"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	p.ID = coerceString(shadow.ID)
	p.Title = coerceString(shadow.Title)
	p.Subject = coerceString(shadow.Subject)
	p.Board = coerceString(shadow.Board)
	p.TimeAllowed = coerceString(shadow.TimeAllowed)
	p.Instructions = coerceString(shadow.Instructions)
	p.Passage = coerceString(shadow.Passage)
	p.Questions = shadow.Questions
	return nil
}

// UnmarshalJSON decodes a question with the same scalar coercion rules as
// ExamPaper. A non-integer correctAnswerIndex decodes as zero and is caught
// by Validate.
func (q *Question) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Text        json.RawMessage   `json:"questionText"`
		Options     []json.RawMessage `json:"options"`
		Correct     json.RawMessage   `json:"correctAnswerIndex"`
		Explanation json.RawMessage   `json:"explanation"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	q.Text = coerceString(shadow.Text)
	q.Explanation = coerceString(shadow.Explanation)
	q.Options = nil
	for _, raw := range shadow.Options {
		q.Options = append(q.Options, coerceString(raw))
	}
	q.CorrectAnswer = 0
	if len(shadow.Correct) > 0 {
		var idx int
		if err := json.Unmarshal(shadow.Correct, &idx); err == nil {
			q.CorrectAnswer = idx
		}
	}
	return nil
}

func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return ""
}
