package layout

import (
	"bytes"

	treeblood "github.com/wyatt915/goldmark-treeblood"
	"github.com/yuin/goldmark"
)

// RenderLaTeX renders a LaTeX maths expression by converting it to MathML
// via goldmark's treeblood extension and laying out the resulting markup.
// Maths-heavy papers route their notation through here.
func (e *Engine) RenderLaTeX(latex string) error {
	source := "$$" + latex + "$$"

	md := goldmark.New(
		goldmark.WithExtensions(
			treeblood.MathML(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return err
	}
	return e.RenderHTML(buf.String())
}
