package mdanchor

import (
	"fmt"

	"github.com/alnah/go-mdanchor/anchor"
	"github.com/alnah/go-mdanchor/internal/pipeline"
)

// Options selects the Markdown dialect and rendering behavior.
// The zero value is plain CommonMark; DefaultOptions enables GFM.
type Options struct {
	GFM      bool // tables, strikethrough, autolinks, task lists
	Pedantic bool // plain Markdown only; disables GFM even when GFM is set
	Sanitize bool // omit raw HTML instead of passing it through
	Breaks   bool // render soft line breaks as <br>
	XHTML    bool // self-closing void tags

	HeaderPrefix string // prepended to every heading anchor

	Highlight      bool   // syntax highlight fenced code blocks
	HighlightStyle string // chroma style name (default: "github")
}

// DefaultOptions returns GFM enabled, pedantic off, sanitize off.
func DefaultOptions() Options {
	return Options{GFM: true}
}

// Option configures a Converter.
type Option func(*converterConfig)

// converterConfig holds the settings accumulated from Options.
type converterConfig struct {
	opts          Options
	rendererOpts  []anchor.RendererOption
	invalidOption error
}

func newConverterConfig(opts []Option) *converterConfig {
	cfg := &converterConfig{opts: DefaultOptions()}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// validate returns ErrInvalidOption for settings that cannot render.
func (c *converterConfig) validate() error {
	if c.invalidOption != nil {
		return c.invalidOption
	}
	if c.opts.Highlight && c.opts.HighlightStyle != "" {
		if err := pipeline.ValidateHighlightStyle(c.opts.HighlightStyle); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}
	}
	return nil
}

// pipelineOptions converts the public Options to the internal pipeline type.
func (c *converterConfig) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		GFM:            c.opts.GFM,
		Pedantic:       c.opts.Pedantic,
		Sanitize:       c.opts.Sanitize,
		Breaks:         c.opts.Breaks,
		XHTML:          c.opts.XHTML,
		Highlight:      c.opts.Highlight,
		HighlightStyle: c.opts.HighlightStyle,
	}
}

// rendererOptions returns the options for each render session's anchor.Renderer.
// The header prefix comes first so custom renderer options can override it.
func (c *converterConfig) rendererOptions() []anchor.RendererOption {
	opts := make([]anchor.RendererOption, 0, len(c.rendererOpts)+1)
	if c.opts.HeaderPrefix != "" {
		opts = append(opts, anchor.WithHeaderPrefix(c.opts.HeaderPrefix))
	}
	return append(opts, c.rendererOpts...)
}

// WithOptions replaces every dialect setting at once, e.g. from a config file.
func WithOptions(o Options) Option {
	return func(c *converterConfig) {
		c.opts = o
	}
}

// WithGFM toggles GitHub Flavored Markdown.
func WithGFM(enabled bool) Option {
	return func(c *converterConfig) {
		c.opts.GFM = enabled
	}
}

// WithPedantic toggles plain Markdown parsing.
func WithPedantic(enabled bool) Option {
	return func(c *converterConfig) {
		c.opts.Pedantic = enabled
	}
}

// WithSanitize toggles raw HTML omission. Raw HTML blocks are replaced by
// an "<!-- raw HTML omitted -->" comment and inline tags are dropped; the
// markup is not escaped into visible text. Inline table wrapping does not
// apply to omitted HTML.
func WithSanitize(enabled bool) Option {
	return func(c *converterConfig) {
		c.opts.Sanitize = enabled
	}
}

// WithBreaks toggles rendering soft line breaks as <br>.
func WithBreaks(enabled bool) Option {
	return func(c *converterConfig) {
		c.opts.Breaks = enabled
	}
}

// WithXHTML toggles self-closing void tags.
func WithXHTML(enabled bool) Option {
	return func(c *converterConfig) {
		c.opts.XHTML = enabled
	}
}

// WithHeaderPrefix prepends prefix to every heading anchor.
func WithHeaderPrefix(prefix string) Option {
	return func(c *converterConfig) {
		c.opts.HeaderPrefix = prefix
	}
}

// WithHighlighting enables fenced code highlighting with the given chroma
// style. An empty style selects "github"; an unknown one makes rendering
// fail with ErrInvalidOption.
func WithHighlighting(style string) Option {
	return func(c *converterConfig) {
		c.opts.Highlight = true
		c.opts.HighlightStyle = style
	}
}

// WithRendererOptions customizes the heading formatter and table wrapper
// used by every render session (slug function, classes, prefix).
func WithRendererOptions(opts ...anchor.RendererOption) Option {
	return func(c *converterConfig) {
		for _, o := range opts {
			if o == nil {
				c.invalidOption = fmt.Errorf("%w: nil renderer option", ErrInvalidOption)
				return
			}
		}
		c.rendererOpts = append(c.rendererOpts, opts...)
	}
}

// DocumentOptions configures a standalone HTML document.
type DocumentOptions struct {
	Title    string      // <title>; defaults to the first h1 text
	Lang     string      // <html lang>; defaults to "en"
	Style    string      // built-in style name; "" = no built-in style
	CSS      string      // extra CSS appended after Style
	TOC      *TOCOptions // nil = no table of contents
	Assets   AssetLoader // nil = embedded assets
	Template string      // template name; "" = "document"

	// Fragment returns the rendered body with the stylesheet and TOC
	// prepended instead of a complete page.
	Fragment bool
}

// TOCOptions configures the numbered table of contents.
type TOCOptions struct {
	Title    string // empty = no title above the list
	MinDepth int    // 1-6, 0 = 2 (skips the page title)
	MaxDepth int    // 1-6, 0 = 3
}

// Default TOC depths.
const (
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 3
)

// toTOCData resolves depth defaults and validates the range.
func (t *TOCOptions) toTOCData() (*pipeline.TOCData, error) {
	if t == nil {
		return nil, nil
	}
	minDepth, maxDepth := t.MinDepth, t.MaxDepth
	if minDepth == 0 {
		minDepth = DefaultTOCMinDepth
	}
	if maxDepth == 0 {
		maxDepth = max(DefaultTOCMaxDepth, minDepth)
	}
	if minDepth < 1 || minDepth > 6 || maxDepth < 1 || maxDepth > 6 || minDepth > maxDepth {
		return nil, fmt.Errorf("%w: %d..%d (must be within 1..6, min <= max)", ErrInvalidTOCDepth, minDepth, maxDepth)
	}
	return &pipeline.TOCData{Title: t.Title, MinDepth: minDepth, MaxDepth: maxDepth}, nil
}
