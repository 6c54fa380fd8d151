package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-mdanchor/anchor"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the chroma style used when highlighting is
// enabled without an explicit style.
const DefaultHighlightStyle = "github"

// Options selects the Markdown dialect and rendering behavior.
type Options struct {
	GFM      bool // tables, strikethrough, autolinks, task lists
	Pedantic bool // plain Markdown only; disables GFM even when GFM is set
	Sanitize bool // omit raw HTML instead of passing it through
	Breaks   bool // render soft line breaks as <br>
	XHTML    bool // self-closing void tags

	Highlight      bool   // syntax highlight fenced code with CSS classes
	HighlightStyle string // chroma style name, see HighlightCSS
}

// DefaultOptions returns GFM enabled, pedantic off, sanitize off.
func DefaultOptions() Options {
	return Options{GFM: true}
}

// HTMLConverter abstracts Markdown to HTML conversion for one render session.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string, r *anchor.Renderer) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
type GoldmarkConverter struct {
	opts Options
}

// NewGoldmarkConverter creates a GoldmarkConverter for the given options.
func NewGoldmarkConverter(opts Options) *GoldmarkConverter {
	if opts.HighlightStyle == "" {
		opts.HighlightStyle = DefaultHighlightStyle
	}
	return &GoldmarkConverter{opts: opts}
}

// Options returns the options the converter was built with.
func (c *GoldmarkConverter) Options() Options {
	return c.opts
}

// newMarkdown builds a goldmark instance whose heading, table and HTML block
// renderers are bound to r and stop once ctx is done. Node renderers cannot
// see per-conversion state, so each render session gets its own instance.
func (c *GoldmarkConverter) newMarkdown(ctx context.Context, r *anchor.Renderer) goldmark.Markdown {
	var exts []goldmark.Extender
	if c.opts.GFM && !c.opts.Pedantic {
		exts = append(exts, extension.GFM)
	}
	if c.opts.Highlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(c.opts.HighlightStyle),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // styles come from HighlightCSS
			),
		))
	}
	exts = append(exts, newAnchorExtension(ctx, r, !c.opts.Sanitize))

	var rendererOpts []renderer.Option
	if c.opts.Breaks {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}
	if c.opts.XHTML {
		rendererOpts = append(rendererOpts, html.WithXHTML())
	}
	if !c.opts.Sanitize {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}

// ToHTML converts Markdown content to an HTML fragment, resolving heading
// anchors through r in document order.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context. On cancellation ToHTML waits
// for the conversion to stop, so r is never used after ToHTML returns.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string, r *anchor.Renderer) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	md := c.newMarkdown(ctx, r)
	done := make(chan result, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- result{err: fmt.Errorf("%w: panic: %v", ErrHTMLConversion, p)}
			}
		}()

		var buf bytes.Buffer
		if err := md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %w", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		<-done
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// Compile-time interface check.
var _ HTMLConverter = (*GoldmarkConverter)(nil)
