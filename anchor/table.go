package anchor

import (
	"html"
	"strings"
)

// DefaultContainerClass is the class of the div wrapping every table.
const DefaultContainerClass = "table-container"

const (
	tableOpenTag  = "<table>"
	tableCloseTag = "</table>"
)

// WrapGeneratedTable returns a table built from header and body rows,
// wrapped in a container div.
func WrapGeneratedTable(header, body string) string {
	return wrapGeneratedTable(DefaultContainerClass, header, body)
}

// WrapInlineTable wraps raw HTML containing a table in a container div.
//
// Only the first "<table>" and the first "</table>" are considered, each
// independently; further tables in the same source stay unwrapped. Input
// without those tags is returned unchanged.
func WrapInlineTable(src string) string {
	return wrapInlineTable(DefaultContainerClass, src)
}

func containerOpen(class string) string {
	return `<div class="` + html.EscapeString(class) + `">`
}

const containerClose = "</div>"

func wrapGeneratedTable(class, header, body string) string {
	var sb strings.Builder
	sb.Grow(len(header) + len(body) + 96)
	sb.WriteString(containerOpen(class))
	sb.WriteString("<table>\n")
	sb.WriteString("<thead>\n")
	sb.WriteString(header)
	sb.WriteString("</thead>\n")
	sb.WriteString("<tbody>\n")
	sb.WriteString(body)
	sb.WriteString("</tbody>\n")
	sb.WriteString("</table>\n")
	sb.WriteString(containerClose)
	return sb.String()
}

func wrapInlineTable(class, src string) string {
	src = strings.Replace(src, tableOpenTag, containerOpen(class)+tableOpenTag, 1)
	return strings.Replace(src, tableCloseTag, tableCloseTag+containerClose, 1)
}
