package writer

import (
	"bytes"
	"fmt"
)

const fileHeader = "%PDF-1.7\n%\xE2\xE3\xCF\xD3\n"

// objectWriter appends objects to a single buffer while recording each
// object's byte offset for the cross-reference table. Object numbers are
// assigned in emission order starting at 1, so callers never track offsets
// or numbering by hand.
type objectWriter struct {
	buf     bytes.Buffer
	offsets []int
}

func newObjectWriter() *objectWriter {
	w := &objectWriter{}
	w.buf.WriteString(fileHeader)
	return w
}

// begin starts the next object and returns its number.
func (w *objectWriter) begin() int {
	num := len(w.offsets) + 1
	w.offsets = append(w.offsets, w.buf.Len())
	fmt.Fprintf(&w.buf, "%d 0 obj\n", num)
	return num
}

// end closes the object opened by the matching begin.
func (w *objectWriter) end() {
	w.buf.WriteString("endobj\n")
}

// body exposes the underlying buffer for writing the object's contents
// between begin and end.
func (w *objectWriter) body() *bytes.Buffer { return &w.buf }

// finish emits the cross-reference table and trailer and returns the
// complete file. Object 0 is the conventional free-list sentinel.
func (w *objectWriter) finish(root int) []byte {
	xrefOffset := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n", len(w.offsets)+1)
	w.buf.WriteString("0000000000 65535 f \n")
	for _, off := range w.offsets {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&w.buf, "trailer\n<</Size %d /Root %d 0 R>>\nstartxref\n%d\n%%%%EOF\n",
		len(w.offsets)+1, root, xrefOffset)
	return w.buf.Bytes()
}
