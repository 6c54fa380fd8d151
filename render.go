package mdanchor

import (
	"context"

	"github.com/alnah/go-mdanchor/anchor"
)

// Render converts markdown to HTML with default options merged with opts.
func Render(ctx context.Context, markdown string, opts ...Option) (string, error) {
	return New(opts...).Render(ctx, markdown)
}

// RenderFunc is the callback form of Render.
//
// Argument errors (ErrEmptyMarkdown, ErrNilCallback, ErrInvalidOption) are
// returned directly and cb is never called. Otherwise RenderFunc returns nil
// and cb is called exactly once, from another goroutine, with the HTML or
// the parser error.
func RenderFunc(ctx context.Context, markdown string, cb func(html string, err error), opts ...Option) error {
	if cb == nil {
		return ErrNilCallback
	}
	conv := New(opts...)
	if err := conv.validateInput(markdown); err != nil {
		return err
	}

	go func() {
		cb(conv.Render(ctx, markdown))
	}()
	return nil
}

// GetAnchor returns the base anchor for text: lowercase, spaces as
// hyphens, punctuation removed. No deduplication is applied.
func GetAnchor(text string) string {
	return anchor.Slugify(text)
}

// GetRenderer returns a fresh formatter set with an empty anchor registry.
func GetRenderer(opts ...anchor.RendererOption) *anchor.Renderer {
	return anchor.NewRenderer(opts...)
}

// Document renders markdown into a standalone HTML page with default
// options merged with opts.
func Document(ctx context.Context, markdown string, doc DocumentOptions, opts ...Option) (string, error) {
	return New(opts...).Document(ctx, markdown, doc)
}
