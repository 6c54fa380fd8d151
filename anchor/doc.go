// Package anchor generates GitHub-style heading anchors and wraps tables
// in a scroll-safe container.
//
// The package is independent of any Markdown engine. A render session
// creates one Renderer (or resets an existing one), then calls it once per
// heading and once per table in document order:
//
//	r := anchor.NewRenderer()
//	r.Heading(2, "Examples", "Examples") // <h2 id="examples">...
//	r.Heading(2, "Examples", "Examples") // <h2 id="examples-1">...
//
// # Slugs
//
// Slugify keeps ASCII letters, digits, underscore, hyphen and Cyrillic
// letters (including Ё and ё). Spaces become hyphens before filtering, so
// "A & B!" becomes "a--b". Only ASCII letters are lower-cased.
//
// # Duplicates
//
// A Registry remembers base anchors for one render. The first occurrence
// keeps the bare slug, later ones get "-1", "-2" and so on. Registries are
// not safe for concurrent use; give every render its own Renderer.
package anchor
