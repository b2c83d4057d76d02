package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const samplePaperJSON = `{
	"title": "Sample",
	"subject": "maths",
	"questions": [
		{"questionText": "What is 2+2?", "options": ["3", "4", "5", "6"], "correctAnswerIndex": 1, "explanation": "2+2=4"}
	]
}`

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestPaperPDF(t *testing.T) {
	rec := postJSON(t, New().Handler(), "/api/papers/pdf", samplePaperJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="sample.pdf"`) {
		t.Fatalf("content disposition = %q", cd)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("cache control = %q", cc)
	}
	body := rec.Body.Bytes()
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Fatal("response is not a PDF")
	}
	if !bytes.HasSuffix(body, []byte("%%EOF\n")) {
		t.Fatal("response is truncated")
	}
	// The answer key for the sample must name option B.
	if !bytes.Contains(body, []byte("(1. B) Tj")) {
		t.Fatal("answer key line missing from content stream")
	}
	if !bytes.Contains(body, []byte(`(Explanation: 2+2=4) Tj`)) {
		t.Fatal("explanation line missing from content stream")
	}
}

func TestPaperPDFFilenameDerivation(t *testing.T) {
	body := strings.Replace(samplePaperJSON, `"Sample"`, `"Year 5 Maths — Mock #1!"`, 1)
	rec := postJSON(t, New().Handler(), "/api/papers/pdf", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `filename="year-5-maths-mock-1.pdf"`) {
		t.Fatalf("content disposition = %q", cd)
	}
}

func TestPaperPDFRejectsMalformedBody(t *testing.T) {
	rec := postJSON(t, New().Handler(), "/api/papers/pdf", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error body not JSON: %v", err)
	}
	if resp["error"] == "" {
		t.Fatal("expected descriptive error message")
	}
}

func TestPaperPDFRejectsEmptyQuestions(t *testing.T) {
	rec := postJSON(t, New().Handler(), "/api/papers/pdf",
		`{"title": "T", "subject": "maths", "questions": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "questions") {
		t.Fatalf("error should name the questions field: %s", rec.Body.String())
	}
}

func TestPaperPDFRejectsOutOfRangeAnswer(t *testing.T) {
	body := strings.Replace(samplePaperJSON, `"correctAnswerIndex": 1`, `"correctAnswerIndex": 9`, 1)
	rec := postJSON(t, New().Handler(), "/api/papers/pdf", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRenderMarkdown(t *testing.T) {
	body := `{"format": "markdown", "title": "Notes", "content": "# Revision\n\nPractice daily."}`
	rec := postJSON(t, New().Handler(), "/api/render", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Fatal("response is not a PDF")
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("(Revision) Tj")) {
		t.Fatal("heading missing from rendered output")
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	rec := postJSON(t, New().Handler(), "/api/render",
		`{"format": "docx", "content": "hello"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestScriptPDF(t *testing.T) {
	script := `({
		title: "Scripted",
		subject: "maths",
		questions: [{questionText: "1+1?", options: ["1", "2"], correctAnswerIndex: 1}]
	})`
	body, _ := json.Marshal(map[string]string{"script": script})
	rec := postJSON(t, New().Handler(), "/api/papers/script", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "scripted.pdf") {
		t.Fatalf("content disposition = %q", cd)
	}
}

func TestScriptPDFRejectsInvalidResult(t *testing.T) {
	body, _ := json.Marshal(map[string]string{"script": `({title: "No questions", subject: "x", questions: []})`})
	rec := postJSON(t, New().Handler(), "/api/papers/script", string(body))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
