package pipeline

import (
	"bytes"
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdanchor/anchor"
)

// rawHTMLOmitted matches goldmark's placeholder for raw HTML in safe mode.
const rawHTMLOmitted = "<!-- raw HTML omitted -->\n"

// anchorRendererPriority beats both the core HTML renderer (1000) and the
// GFM table renderer (500).
const anchorRendererPriority = 100

// anchorExtension routes headings, tables and HTML blocks through an
// anchor.Renderer. It holds per-render state and must not be reused
// across documents without resetting the renderer.
//
// Once ctx is done every node renderer returns ctx.Err(), which stops
// Goldmark's walk before r is touched again.
type anchorExtension struct {
	ctx    context.Context
	r      *anchor.Renderer
	unsafe bool
}

// newAnchorExtension binds r to a Goldmark extension. When unsafe is false,
// HTML blocks are omitted instead of being passed through.
func newAnchorExtension(ctx context.Context, r *anchor.Renderer, unsafe bool) *anchorExtension {
	return &anchorExtension{ctx: ctx, r: r, unsafe: unsafe}
}

// Extend implements goldmark.Extender.
func (e *anchorExtension) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(e, anchorRendererPriority)),
	)
}

// RegisterFuncs implements renderer.NodeRenderer.
func (e *anchorExtension) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, e.renderHeading)
	reg.Register(east.KindTable, e.renderTable)
	reg.Register(ast.KindHTMLBlock, e.renderHTMLBlock)
}

func (e *anchorExtension) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if err := e.ctx.Err(); err != nil {
		return ast.WalkStop, err
	}
	n := node.(*ast.Heading)
	if entering {
		id := e.r.Anchor(headingSource(n, source))
		_, _ = w.WriteString(e.r.HeadingOpen(n.Level, id))
	} else {
		_, _ = w.WriteString(e.r.HeadingClose(n.Level))
	}
	return ast.WalkContinue, nil
}

func (e *anchorExtension) renderTable(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if err := e.ctx.Err(); err != nil {
		return ast.WalkStop, err
	}
	if entering {
		_, _ = w.WriteString(e.r.TableOpen())
	} else {
		_, _ = w.WriteString(e.r.TableClose())
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (e *anchorExtension) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if err := e.ctx.Err(); err != nil {
		return ast.WalkStop, err
	}
	if !entering {
		return ast.WalkContinue, nil
	}
	if !e.unsafe {
		_, _ = w.WriteString(rawHTMLOmitted)
		return ast.WalkSkipChildren, nil
	}

	n := node.(*ast.HTMLBlock)
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	if n.HasClosure() {
		sb.Write(n.ClosureLine.Value(source))
	}

	_, _ = w.WriteString(e.r.HTML(sb.String()))
	return ast.WalkSkipChildren, nil
}

// headingSource returns the raw Markdown text of a heading, before inline
// parsing. Lines of multi-line (setext) headings are joined with "\n".
func headingSource(n *ast.Heading, source []byte) string {
	lines := n.Lines()
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		if i > 0 {
			buf.WriteByte('\n')
		}
		seg := lines.At(i)
		buf.Write(bytes.TrimSpace(seg.Value(source)))
	}
	return buf.String()
}
