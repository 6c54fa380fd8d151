package pipeline

import (
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RebaseRelativePaths rewrites relative img[src] and a[href] values so they
// keep pointing at the same files when HTML rendered from a document in
// sourceDir is written to outputDir. Returns htmlContent unchanged when
// either directory is empty or both resolve to the same place.
//
// Not rewritten: fragment-only links (heading anchors), URLs with a scheme,
// protocol-relative URLs and absolute paths.
func RebaseRelativePaths(htmlContent, sourceDir, outputDir string) (string, error) {
	if sourceDir == "" || outputDir == "" {
		return htmlContent, nil
	}

	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return "", err
	}
	if absSource == absOutput {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rebaseNode(doc, absSource, absOutput)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node and whether it was a fragment.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Parse with body context to avoid an <html><body> wrapper.
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the document back to string. Fragments render their
// children only.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func rebaseNode(n *html.Node, sourceDir, outputDir string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rebaseAttr(n, "src", sourceDir, outputDir)
		case atom.A:
			rebaseAttr(n, "href", sourceDir, outputDir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rebaseNode(c, sourceDir, outputDir)
	}
}

func rebaseAttr(n *html.Node, attrName, sourceDir, outputDir string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}

		path, suffix := splitPathSuffix(attr.Val)
		rel, err := filepath.Rel(outputDir, filepath.Join(sourceDir, filepath.FromSlash(path)))
		if err != nil {
			continue
		}
		n.Attr[i].Val = filepath.ToSlash(rel) + suffix
	}
}

// splitPathSuffix separates "file.md?x#frag" into "file.md" and "?x#frag".
func splitPathSuffix(s string) (path, suffix string) {
	if idx := strings.IndexAny(s, "?#"); idx != -1 {
		return s[:idx], s[idx:]
	}
	return s, ""
}

// isRelativePath reports whether a link target is a relative file path.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "?") {
		return false
	}
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/") || filepath.IsAbs(path) {
		return false
	}
	// Any scheme: http:, https:, mailto:, data:, file:, ...
	if idx := strings.Index(path, ":"); idx != -1 && !strings.ContainsAny(path[:idx], "/.?#") {
		return false
	}
	return true
}
