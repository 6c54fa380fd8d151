// Package mdanchor renders Markdown to HTML with GitHub-style heading
// anchors and scroll-safe tables.
//
// # Quick Start
//
//	html, err := mdanchor.Render(ctx, "# Examples\n\n## Examples\n")
//	// <h1 id="examples"><a href="#examples" class="anchor"></a>Examples</h1>
//	// <h2 id="examples-1"><a href="#examples-1" class="anchor"></a>Examples</h2>
//
// # Heading Anchors
//
// Each heading's id is derived from its raw Markdown text: lowercased,
// spaces turned into hyphens, everything but Latin letters, digits, '_',
// '-' and Cyrillic letters removed. Repeated ids within one document get
// "-1", "-2", ... suffixes. Numbering restarts for every Render call.
//
// # Tables
//
// Generated tables and the first table in each raw HTML block are wrapped
// in <div class="table-container"> so wide tables scroll instead of
// breaking the layout.
//
// # Configuration
//
// Use functional options over the defaults (GFM on, pedantic and sanitize off):
//
//	conv := mdanchor.New(
//	    mdanchor.WithSanitize(true),
//	    mdanchor.WithHeaderPrefix("doc-"),
//	    mdanchor.WithHighlighting("monokai"),
//	)
//	html, err := conv.Render(ctx, markdown)
//
// A Converter is safe for concurrent use.
//
// # Callback Form
//
// RenderFunc validates its arguments synchronously and delivers the result
// to a callback exactly once:
//
//	err := mdanchor.RenderFunc(ctx, markdown, func(html string, err error) {
//	    ...
//	})
//
// # Standalone Documents
//
// Document wraps the rendered body in an HTML5 page with an optional
// built-in style and a numbered table of contents linking to the anchors:
//
//	page, err := conv.Document(ctx, markdown, mdanchor.DocumentOptions{
//	    Style: mdanchor.DefaultStyle,
//	    TOC:   &mdanchor.TOCOptions{Title: "Contents"},
//	})
//
// The anchor subpackage exposes the slug generator, the anchor registry
// and the formatter set for use with other Markdown engines.
package mdanchor
