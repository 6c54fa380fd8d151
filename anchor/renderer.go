package anchor

// Renderer is the formatter set used by one render session: a heading
// formatter and a table wrapper bound to a single Registry.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	reg            *Registry
	slug           SlugFunc
	prefix         string
	linkClass      string
	containerClass string
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithSlugFunc replaces Slugify as the base anchor generator.
func WithSlugFunc(fn SlugFunc) RendererOption {
	return func(r *Renderer) {
		if fn != nil {
			r.slug = fn
		}
	}
}

// WithHeaderPrefix prepends prefix to every base anchor.
func WithHeaderPrefix(prefix string) RendererOption {
	return func(r *Renderer) {
		r.prefix = prefix
	}
}

// WithLinkClass sets the class of the self-link inside headings.
func WithLinkClass(class string) RendererOption {
	return func(r *Renderer) {
		if class != "" {
			r.linkClass = class
		}
	}
}

// WithContainerClass sets the class of the div wrapping tables.
func WithContainerClass(class string) RendererOption {
	return func(r *Renderer) {
		if class != "" {
			r.containerClass = class
		}
	}
}

// NewRenderer returns a Renderer with a fresh Registry.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		reg:            NewRegistry(),
		slug:           Slugify,
		linkClass:      DefaultLinkClass,
		containerClass: DefaultContainerClass,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reset clears the bound registry so anchor numbering starts over.
func (r *Renderer) Reset() {
	r.reg.Reset()
}

// Registry returns the registry bound to r.
func (r *Renderer) Registry() *Registry {
	return r.reg
}

// Anchor resolves the unique anchor for a heading with the given raw text.
// Each call records the heading, so it must run exactly once per heading.
func (r *Renderer) Anchor(raw string) string {
	return r.reg.Resolve(r.prefix + r.slug(raw))
}

// Heading returns a complete anchored heading element.
func (r *Renderer) Heading(level int, raw, inner string) string {
	id := r.Anchor(raw)
	return r.HeadingOpen(level, id) + inner + r.HeadingClose(level)
}

// HeadingOpen returns the opening tag and self-link for an anchor that was
// already resolved with Anchor.
func (r *Renderer) HeadingOpen(level int, id string) string {
	return HeadingOpen(level, id, r.linkClass)
}

// HeadingClose returns the closing heading tag.
func (r *Renderer) HeadingClose(level int) string {
	return HeadingClose(level)
}

// Table wraps generated header and body rows.
func (r *Renderer) Table(header, body string) string {
	return wrapGeneratedTable(r.containerClass, header, body)
}

// TableOpen returns the markup preceding a streamed table's rows.
func (r *Renderer) TableOpen() string {
	return containerOpen(r.containerClass) + "<table>\n"
}

// TableClose returns the markup following a streamed table's rows.
func (r *Renderer) TableClose() string {
	return "</table>\n" + containerClose
}

// HTML wraps the first raw table found in an inline HTML block.
func (r *Renderer) HTML(src string) string {
	return wrapInlineTable(r.containerClass, src)
}
