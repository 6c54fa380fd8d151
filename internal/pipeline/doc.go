// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// The stages are:
//   - Markdown preprocessing (line ending normalization, BOM removal)
//   - Markdown to HTML conversion via Goldmark, with heading, table and
//     HTML block rendering delegated to an anchor.Renderer
//   - Optional post-processing: relative path rebasing, table of contents,
//     CSS injection and standalone document wrapping
//
// Every conversion builds its own Goldmark instance bound to the caller's
// anchor.Renderer, so concurrent conversions never share anchor state.
package pipeline
