package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNopTracer(t *testing.T) {
	tracer := NopTracer()
	ctx := context.Background()
	ctx2, span := tracer.StartSpan(ctx, "test")
	if ctx2 != ctx {
		t.Fatalf("nop tracer should return same context")
	}
	span.SetTag("key", "value")
	span.SetError(nil)
	span.Finish()
}

func TestStdLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewStdLogger(&buf)
	log.With(String("paper", "abc")).Info("generated", Int("pages", 3))
	out := buf.String()
	if !strings.Contains(out, "INFO generated") {
		t.Fatalf("missing level and message: %q", out)
	}
	if !strings.Contains(out, "paper=abc") || !strings.Contains(out, "pages=3") {
		t.Fatalf("missing fields: %q", out)
	}
}
