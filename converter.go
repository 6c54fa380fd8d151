package mdanchor

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-mdanchor/anchor"
	"github.com/alnah/go-mdanchor/internal/assets"
	"github.com/alnah/go-mdanchor/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Converter renders Markdown to HTML with unique heading anchors and
// wrapped tables. Create with New.
//
// A Converter is safe for concurrent use: every call renders with its own
// anchor.Renderer, so anchor numbering never leaks between documents.
type Converter struct {
	cfg           *converterConfig
	err           error
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
}

// New creates a Converter. Options merge over DefaultOptions.
// Invalid options are reported by the first Render call as ErrInvalidOption.
func New(opts ...Option) *Converter {
	cfg := newConverterConfig(opts)
	return &Converter{
		cfg:           cfg,
		err:           cfg.validate(),
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(cfg.pipelineOptions()),
		cssInjector:   &pipeline.CSSInjection{},
	}
}

// Options returns the dialect settings the Converter renders with.
func (c *Converter) Options() Options {
	return c.cfg.opts
}

// Err returns the option validation error, if any.
func (c *Converter) Err() error {
	return c.err
}

// NewRenderer returns a fresh formatter set configured like the ones
// Render uses.
func (c *Converter) NewRenderer() *anchor.Renderer {
	return anchor.NewRenderer(c.cfg.rendererOptions()...)
}

// Render converts markdown to an HTML fragment. Every heading carries a
// unique id and self-link; every table is wrapped in a container div.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Render(ctx context.Context, markdown string) (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(markdown); err != nil {
		return "", err
	}
	return c.render(ctx, markdown, c.NewRenderer())
}

// RenderWith is Render using a caller-supplied Renderer. The renderer is
// used as is: call Reset first for numbering that starts over.
func (c *Converter) RenderWith(ctx context.Context, markdown string, r *anchor.Renderer) (html string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("internal error: %v", p)
		}
	}()

	if err := c.validateInput(markdown); err != nil {
		return "", err
	}
	if r == nil {
		return "", fmt.Errorf("%w: nil renderer", ErrInvalidOption)
	}
	return c.render(ctx, markdown, r)
}

func (c *Converter) render(ctx context.Context, markdown string, r *anchor.Renderer) (string, error) {
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, markdown)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.htmlConverter.ToHTML(ctx, mdContent, r)
}

// validateInput checks the converter options and the markdown argument.
func (c *Converter) validateInput(markdown string) error {
	if c.err != nil {
		return c.err
	}
	if markdown == "" {
		return ErrEmptyMarkdown
	}
	return nil
}

// Document renders markdown into a standalone HTML page with an optional
// stylesheet and numbered table of contents linking to the heading anchors.
func (c *Converter) Document(ctx context.Context, markdown string, opts DocumentOptions) (string, error) {
	tocData, err := opts.TOC.toTOCData()
	if err != nil {
		return "", err
	}
	loader := opts.Assets
	if loader == nil {
		loader = defaultAssetLoader{}
	}

	body, err := c.Render(ctx, markdown)
	if err != nil {
		return "", err
	}

	css, err := c.documentCSS(loader, opts)
	if err != nil {
		return "", err
	}

	toc, err := pipeline.BuildTOC(ctx, body, tocData)
	if err != nil {
		return "", fmt.Errorf("building TOC: %w", err)
	}

	if opts.Fragment {
		return c.cssInjector.InjectCSS(ctx, toc+body, css), ctx.Err()
	}

	templateName := opts.Template
	if templateName == "" {
		templateName = assets.DocumentTemplate
	}
	tmplContent, err := loader.LoadTemplate(templateName)
	if err != nil {
		return "", err
	}
	wrapper, err := pipeline.NewDocumentWrapper(tmplContent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}

	title := opts.Title
	if title == "" {
		title = pipeline.FirstHeadingText(body)
	}

	return wrapper.Wrap(ctx, pipeline.DocumentData{
		Title: title,
		Lang:  opts.Lang,
		CSS:   css,
		TOC:   toc,
		Body:  body,
	})
}

// documentCSS combines the built-in style, the highlighting stylesheet and
// user CSS. User CSS comes last so it can override the rest.
func (c *Converter) documentCSS(loader AssetLoader, opts DocumentOptions) (string, error) {
	var parts []string

	if opts.Style != "" {
		style, err := loader.LoadStyle(opts.Style)
		if err != nil {
			return "", err
		}
		parts = append(parts, style)
	}

	if c.cfg.opts.Highlight {
		style := c.cfg.opts.HighlightStyle
		if style == "" {
			style = pipeline.DefaultHighlightStyle
		}
		css, err := pipeline.HighlightCSS(style)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}
		parts = append(parts, css)
	}

	if opts.CSS != "" {
		parts = append(parts, opts.CSS)
	}
	return strings.Join(parts, "\n"), nil
}
