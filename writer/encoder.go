package writer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nahadgur/11PlusExamPapers/layout"
	"github.com/nahadgur/11PlusExamPapers/observability"
)

// Font resource names registered on every page.
const (
	regularFont = "F1"
	boldFont    = "F2"
)

type impl struct {
	cfg    Config
	log    observability.Logger
	tracer observability.Tracer
}

// pageState accumulates one page's content-stream operations.
type pageState struct {
	ops bytes.Buffer
}

// encoder threads the pagination state explicitly: current page, vertical
// cursor, finished page list.
type encoder struct {
	cfg    Config
	pages  []*pageState
	cur    *pageState
	cursor float64
}

func (e *encoder) openPage() {
	p := &pageState{}
	e.cursor = e.cfg.PageHeight - e.cfg.MarginTop
	fmt.Fprintf(&p.ops, "BT\n%s %s Td\n", num(e.cfg.MarginLeft), num(e.cursor))
	e.pages = append(e.pages, p)
	e.cur = p
}

func (e *encoder) closePage() {
	if e.cur != nil {
		e.cur.ops.WriteString("ET\n")
		e.cur = nil
	}
}

// place appends one line, breaking to a fresh page when the remaining
// vertical space cannot fit the line's height.
func (e *encoder) place(ln layout.Line) {
	size := ln.Size
	if size <= 0 {
		size = e.cfg.FontSize
	}
	height := size + e.cfg.LineGap
	if e.cur == nil || e.cursor-height < e.cfg.MarginBottom {
		e.closePage()
		e.openPage()
	}
	font := regularFont
	if ln.Bold {
		font = boldFont
	}
	fmt.Fprintf(&e.cur.ops, "/%s %s Tf\n(%s) Tj\n0 %s Td\n",
		font, num(size), escapeString(ln.Text), num(-height))
	e.cursor -= height
}

func (w *impl) Write(ctx context.Context, lines []layout.Line, out io.Writer) error {
	ctx, span := w.tracer.StartSpan(ctx, "writer.Write")
	defer span.Finish()
	if err := ctx.Err(); err != nil {
		span.SetError(err)
		return err
	}
	start := time.Now()

	enc := &encoder{cfg: w.cfg}
	for _, ln := range lines {
		enc.place(ln)
	}
	if len(enc.pages) == 0 {
		enc.openPage()
	}
	enc.closePage()

	data := serialize(enc.pages, w.cfg)

	w.log.Debug("pdf serialized",
		observability.Int(observability.MetricLineCount, len(lines)),
		observability.Int(observability.MetricPageCount, len(enc.pages)),
		observability.Int64("bytes", int64(len(data))),
		observability.Int64(observability.MetricWriteTime, time.Since(start).Milliseconds()),
	)
	span.SetTag("pages", len(enc.pages))

	if _, err := out.Write(data); err != nil {
		span.SetError(err)
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// Fixed object numbers; content/page pairs follow in page order.
const (
	catalogObj    = 1
	pagesObj      = 2
	regularObj    = 3
	boldObj       = 4
	firstPagePair = 5
)

func contentObjNum(page int) int { return firstPagePair + 2*page }
func pageObjNum(page int) int    { return firstPagePair + 2*page + 1 }

func serialize(pages []*pageState, cfg Config) []byte {
	ow := newObjectWriter()

	ow.begin() // catalog
	fmt.Fprintf(ow.body(), "<</Type /Catalog /Pages %d 0 R>>\n", pagesObj)
	ow.end()

	ow.begin() // page tree
	kids := &bytes.Buffer{}
	for i := range pages {
		if i > 0 {
			kids.WriteByte(' ')
		}
		fmt.Fprintf(kids, "%d 0 R", pageObjNum(i))
	}
	fmt.Fprintf(ow.body(), "<</Type /Pages /Kids [%s] /Count %d>>\n", kids.String(), len(pages))
	ow.end()

	ow.begin() // regular font
	ow.body().WriteString("<</Type /Font /Subtype /Type1 /BaseFont /Helvetica>>\n")
	ow.end()

	ow.begin() // bold font
	ow.body().WriteString("<</Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold>>\n")
	ow.end()

	for i, p := range pages {
		stream := p.ops.Bytes()
		ow.begin()
		fmt.Fprintf(ow.body(), "<</Length %d>>\nstream\n", len(stream))
		ow.body().Write(stream)
		ow.body().WriteString("endstream\n")
		ow.end()

		ow.begin()
		fmt.Fprintf(ow.body(),
			"<</Type /Page /Parent %d 0 R /MediaBox [0 0 %s %s] /Resources <</Font <</%s %d 0 R /%s %d 0 R>>>> /Contents %d 0 R>>\n",
			pagesObj, num(cfg.PageWidth), num(cfg.PageHeight),
			regularFont, regularObj, boldFont, boldObj, contentObjNum(i))
		ow.end()
	}

	return ow.finish(catalogObj)
}

// num formats a coordinate or size without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escapeString backslash-escapes the literal-string metacharacters so text
// content cannot break the surrounding document structure.
func escapeString(s string) string {
	var b bytes.Buffer
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '(' || c == ')' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
