package scripting

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/dop251/goja"

	"github.com/nahadgur/11PlusExamPapers/paper"
)

// GojaEngine evaluates generator scripts on a goja VM. A VM is not safe for
// concurrent use; create one engine per request or guard it externally.
type GojaEngine struct {
	vm  *goja.Runtime
	rng *rand.Rand
}

// NewEngine creates a generator engine. Seed fixes the random helpers so a
// script can produce a reproducible paper; pass 0 for an arbitrary paper.
func NewEngine(seed int64) *GojaEngine {
	if seed == 0 {
		seed = rand.Int63()
	}
	e := &GojaEngine{vm: goja.New(), rng: rand.New(rand.NewSource(seed))}
	e.registerHelpers()
	return e
}

// registerHelpers exposes the small standard library generator scripts rely
// on: bounded random integers, slice shuffling, and option-letter naming.
func (e *GojaEngine) registerHelpers() {
	e.vm.Set("randomInt", func(call goja.FunctionCall) goja.Value {
		n := int64(1)
		if len(call.Arguments) > 0 {
			n = call.Arguments[0].ToInteger()
		}
		if n < 1 {
			n = 1
		}
		return e.vm.ToValue(e.rng.Int63n(n))
	})
	e.vm.Set("shuffle", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Undefined()
		}
		var items []interface{}
		if err := e.vm.ExportTo(call.Arguments[0], &items); err != nil {
			return call.Arguments[0]
		}
		e.rng.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
		return e.vm.ToValue(items)
	})
	e.vm.Set("answerLetter", func(call goja.FunctionCall) goja.Value {
		idx := 0
		if len(call.Arguments) > 0 {
			idx = int(call.Arguments[0].ToInteger())
		}
		return e.vm.ToValue(paper.AnswerLetter(idx))
	})
}

// GeneratePaper runs the script and decodes its result into an ExamPaper.
// Context cancellation interrupts the VM mid-run.
func (e *GojaEngine) GeneratePaper(ctx context.Context, script string) (*paper.ExamPaper, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		if interruptedErr, ok := err.(*goja.InterruptedError); ok {
			if cause := interruptedErr.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, fmt.Errorf("run generator script: %w", err)
	}
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return nil, fmt.Errorf("generator script returned no paper")
	}

	// Round-trip through JSON so the paper's tolerant decoding rules apply
	// to script output exactly as they do to request bodies.
	data, err := json.Marshal(val.Export())
	if err != nil {
		return nil, fmt.Errorf("encode script result: %w", err)
	}
	var p paper.ExamPaper
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode script result: %w", err)
	}
	return &p, nil
}
