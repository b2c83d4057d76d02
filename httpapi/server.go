// Package httpapi exposes the paper pipeline over HTTP: exam paper JSON in,
// PDF bytes out, plus the markdown/HTML render path and the generator-script
// path.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nahadgur/11PlusExamPapers/layout"
	"github.com/nahadgur/11PlusExamPapers/observability"
	"github.com/nahadgur/11PlusExamPapers/paper"
	"github.com/nahadgur/11PlusExamPapers/scripting"
	"github.com/nahadgur/11PlusExamPapers/writer"
)

const (
	maxBodyBytes  = 1 << 20
	scriptTimeout = 5 * time.Second
)

// Server holds the pipeline pieces behind the HTTP handlers.
type Server struct {
	log     observability.Logger
	tracer  observability.Tracer
	pdf     writer.Writer
	scripts func() scripting.Engine
	measure layout.MeasureFunc
}

// Option configures a Server.
type Option func(*Server)

// WithLogger attaches a logger.
func WithLogger(log observability.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithTracer attaches a tracer.
func WithTracer(tracer observability.Tracer) Option {
	return func(s *Server) { s.tracer = tracer }
}

// WithWriter replaces the PDF writer.
func WithWriter(w writer.Writer) Option {
	return func(s *Server) { s.pdf = w }
}

// WithScriptEngine replaces the generator-script engine factory. A fresh
// engine is created per request because a goja VM is single-threaded.
func WithScriptEngine(factory func() scripting.Engine) Option {
	return func(s *Server) { s.scripts = factory }
}

// WithMeasurer sets the width function used by the render endpoint.
func WithMeasurer(fn layout.MeasureFunc) Option {
	return func(s *Server) { s.measure = fn }
}

// New builds a Server with no-op observability and default components.
func New(opts ...Option) *Server {
	s := &Server{
		log:    observability.NopLogger{},
		tracer: observability.NopTracer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pdf == nil {
		s.pdf = (&writer.WriterBuilder{}).WithLogger(s.log).WithTracer(s.tracer).Build()
	}
	if s.scripts == nil {
		s.scripts = func() scripting.Engine { return scripting.NewEngine(0) }
	}
	return s
}

// Handler returns the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/papers/pdf", s.handlePaperPDF)
	mux.HandleFunc("POST /api/papers/script", s.handleScriptPDF)
	mux.HandleFunc("POST /api/render", s.handleRender)
	return mux
}

func (s *Server) handlePaperPDF(w http.ResponseWriter, r *http.Request) {
	var p paper.ExamPaper
	if err := decodeBody(r, &p); err != nil {
		s.clientError(w, "request body must be an exam paper object with title, subject and a questions array")
		return
	}
	if err := p.Validate(); err != nil {
		s.clientError(w, err.Error())
		return
	}
	p.EnsureID()
	s.respondPDF(w, r, &p, layout.PaperLines(&p))
}

func (s *Server) handleScriptPDF(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Script string `json:"script"`
	}
	if err := decodeBody(r, &body); err != nil || body.Script == "" {
		s.clientError(w, "request body must contain a non-empty script field")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), scriptTimeout)
	defer cancel()

	start := time.Now()
	p, err := s.scripts().GeneratePaper(ctx, body.Script)
	if err != nil {
		s.clientError(w, fmt.Sprintf("generator script failed: %v", err))
		return
	}
	s.log.Debug("script generated paper",
		observability.Int64(observability.MetricScriptTime, time.Since(start).Milliseconds()))
	if err := p.Validate(); err != nil {
		s.clientError(w, fmt.Sprintf("generator script produced an invalid paper: %v", err))
		return
	}
	p.EnsureID()
	s.respondPDF(w, r, p, layout.PaperLines(p))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Format  string `json:"format"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := decodeBody(r, &body); err != nil || body.Content == "" {
		s.clientError(w, "request body must contain format and content fields")
		return
	}

	opts := []layout.Option{}
	if s.measure != nil {
		opts = append(opts, layout.WithMeasurer(s.measure))
	}
	eng := layout.NewEngine(opts...)

	var err error
	switch body.Format {
	case "markdown", "":
		err = eng.RenderMarkdown(body.Content)
	case "html":
		err = eng.RenderHTML(body.Content)
	case "latex":
		err = eng.RenderLaTeX(body.Content)
	default:
		s.clientError(w, fmt.Sprintf("unsupported format %q: want markdown, html or latex", body.Format))
		return
	}
	if err != nil {
		s.clientError(w, fmt.Sprintf("render %s: %v", body.Format, err))
		return
	}

	p := &paper.ExamPaper{Title: body.Title}
	s.respondPDF(w, r, p, eng.Lines())
}

// respondPDF serializes lines into a complete document before touching the
// response so a failed render never leaks partial bytes.
func (s *Server) respondPDF(w http.ResponseWriter, r *http.Request, p *paper.ExamPaper, lines []layout.Line) {
	var buf bytes.Buffer
	if err := s.pdf.Write(r.Context(), lines, &buf); err != nil {
		s.log.Error("pdf generation failed",
			observability.String("paper", p.ID),
			observability.Error("err", err))
		s.serverError(w)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", paper.FileStem(p.Title)+".pdf"))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Request-Id", uuid.NewString())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.log.Warn("response write failed", observability.Error("err", err))
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// Trailing garbage after the JSON value is a malformed request.
	if dec.More() {
		return errors.New("unexpected trailing data")
	}
	return nil
}

func (s *Server) clientError(w http.ResponseWriter, msg string) {
	writeJSONError(w, http.StatusBadRequest, msg)
}

func (s *Server) serverError(w http.ResponseWriter) {
	writeJSONError(w, http.StatusInternalServerError, "failed to generate the paper PDF")
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
