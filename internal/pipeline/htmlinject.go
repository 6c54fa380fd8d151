package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Sentinel errors for HTML post-processing.
var (
	ErrDocumentRender = errors.New("document template rendering failed")
	ErrHTMLParse      = errors.New("failed to parse rendered HTML")
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}
	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if insertPos := afterBodyTag(htmlContent, lowerHTML); insertPos != -1 {
		return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot close its <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// afterBodyTag returns the index just past the opening <body ...> tag, or -1.
func afterBodyTag(htmlContent, lowerHTML string) int {
	idx := strings.Index(lowerHTML, "<body")
	if idx == -1 {
		return -1
	}
	closeIdx := strings.Index(htmlContent[idx:], ">")
	if closeIdx == -1 {
		return -1
	}
	return idx + closeIdx + 1
}

// TOCData holds table of contents settings.
type TOCData struct {
	Title    string
	MinDepth int // Minimum heading level (default: 2, skips H1)
	MaxDepth int // Maximum heading level (default: 3)
}

// headingInfo is an anchored heading found in rendered HTML.
type headingInfo struct {
	Level int
	ID    string
	Text  string
}

// extractHeadings returns anchored headings between minDepth and maxDepth,
// in document order. Headings without an id are skipped.
func extractHeadings(htmlContent string, minDepth, maxDepth int) ([]headingInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}

	var headings []headingInfo
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		id, ok := s.Attr("id")
		if !ok || id == "" {
			return
		}
		level, _ := strconv.Atoi(strings.TrimPrefix(goquery.NodeName(s), "h"))
		if level < minDepth || level > maxDepth {
			return
		}
		headings = append(headings, headingInfo{
			Level: level,
			ID:    id,
			Text:  strings.TrimSpace(s.Text()),
		})
	})
	return headings, nil
}

// FirstHeadingText returns the text of the first h1, or "" if none exists.
func FirstHeadingText(htmlContent string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// numberingState tracks hierarchical numbering for TOC entries.
// The shallowest first heading becomes depth 1 and skipped levels collapse.
type numberingState struct {
	counters     [6]int
	minLevelSeen int
	lastLevel    int
}

// next returns the number string ("1.2.") and effective depth for level.
func (n *numberingState) next(level int) (numStr string, effectiveDepth int) {
	if n.minLevelSeen == 0 {
		n.minLevelSeen = level
	}

	effectiveDepth = max(level-n.minLevelSeen+1, 1)

	// H1 -> H3 becomes depth 1 -> depth 2, not depth 3.
	if n.lastLevel > 0 && effectiveDepth > n.lastLevel+1 {
		effectiveDepth = n.lastLevel + 1
	}

	for i := effectiveDepth; i < 6; i++ {
		n.counters[i] = 0
	}
	n.counters[effectiveDepth-1]++
	n.lastLevel = effectiveDepth

	parts := make([]string, 0, effectiveDepth)
	for i := 0; i < effectiveDepth; i++ {
		parts = append(parts, strconv.Itoa(n.counters[i]))
	}
	return strings.Join(parts, ".") + ".", effectiveDepth
}

// generateNumberedTOC creates HTML for a numbered table of contents linking
// to the heading anchors.
func generateNumberedTOC(headings []headingInfo, title string) string {
	if len(headings) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc">`)

	if title != "" {
		buf.WriteString(`<p class="toc-title">`)
		buf.WriteString(html.EscapeString(title))
		buf.WriteString(`</p>`)
	}

	buf.WriteString(`<div class="toc-list">`)

	var numbering numberingState
	for _, h := range headings {
		num, depth := numbering.next(h.Level)

		buf.WriteString(`<div class="toc-item"`)
		if depth > 1 {
			fmt.Fprintf(&buf, ` style="padding-left:%.1fem"`, float64(depth-1)*1.5)
		}
		buf.WriteString(`><a href="#`)
		buf.WriteString(html.EscapeString(h.ID))
		buf.WriteString(`">`)
		buf.WriteString(num)
		buf.WriteString(` `)
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString(`</a></div>`)
	}

	buf.WriteString(`</div></nav>`)
	return buf.String()
}

// BuildTOC returns a numbered table of contents for the anchored headings in
// htmlContent. Returns "" when data is nil or no heading is in range.
func BuildTOC(ctx context.Context, htmlContent string, data *TOCData) (string, error) {
	if data == nil {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	headings, err := extractHeadings(htmlContent, data.MinDepth, data.MaxDepth)
	if err != nil {
		return "", err
	}
	return generateNumberedTOC(headings, data.Title), nil
}

// DocumentData holds the parts of a standalone HTML document.
type DocumentData struct {
	Title string
	Lang  string
	CSS   string
	TOC   string
	Body  string
}

// DocumentWrapper renders an HTML fragment into a standalone document.
type DocumentWrapper struct {
	tmpl *template.Template
}

// NewDocumentWrapper creates a DocumentWrapper from template content.
// The template receives Title, Lang, CSS, TOC and Body; CSS, TOC and Body
// are trusted and inserted without escaping.
func NewDocumentWrapper(tmplContent string) (*DocumentWrapper, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &DocumentWrapper{tmpl: tmpl}, nil
}

// Wrap renders data into a complete HTML document.
func (d *DocumentWrapper) Wrap(ctx context.Context, data DocumentData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if data.Lang == "" {
		data.Lang = "en"
	}

	view := struct {
		Title string
		Lang  string
		CSS   template.CSS
		TOC   template.HTML
		Body  template.HTML
	}{
		Title: data.Title,
		Lang:  data.Lang,
		CSS:   template.CSS(sanitizeCSS(data.CSS)), // #nosec G203 -- stylesheet comes from assets or the user's own file
		TOC:   template.HTML(data.TOC),             // #nosec G203 -- generated by BuildTOC with escaped text
		Body:  template.HTML(data.Body),            // #nosec G203 -- raw HTML is the point of Sanitize=false
	}

	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}
