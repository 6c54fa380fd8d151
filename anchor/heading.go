package anchor

import (
	"html"
	"strconv"
)

// DefaultLinkClass is the class of the empty link emitted inside headings.
const DefaultLinkClass = "anchor"

// HeadingEvent describes one heading as reported by the Markdown parser.
type HeadingEvent struct {
	Raw    string // raw Markdown source of the heading text
	Level  int    // 1-6
	Prefix string // optional namespace prepended to the slug verbatim
}

// FormatHeading resolves the anchor for ev against reg and returns the
// heading element wrapping inner, the already-rendered inline content.
// A nil slug uses Slugify.
func FormatHeading(ev HeadingEvent, reg *Registry, slug SlugFunc, inner string) string {
	if slug == nil {
		slug = Slugify
	}
	id := reg.Resolve(ev.Prefix + slug(ev.Raw))
	return HeadingOpen(ev.Level, id, DefaultLinkClass) + inner + HeadingClose(ev.Level)
}

// HeadingOpen returns the opening heading tag with its id and the empty
// self-link that precedes the heading content.
func HeadingOpen(level int, id, linkClass string) string {
	id = html.EscapeString(id)
	tag := headingTag(level)
	return "<" + tag + ` id="` + id + `"><a href="#` + id + `" class="` + html.EscapeString(linkClass) + `"></a>`
}

// HeadingClose returns the closing heading tag followed by a newline.
func HeadingClose(level int) string {
	return "</" + headingTag(level) + ">\n"
}

// headingTag returns "h1".."h6", clamping level into range.
func headingTag(level int) string {
	level = min(max(level, 1), 6)
	return "h" + strconv.Itoa(level)
}
