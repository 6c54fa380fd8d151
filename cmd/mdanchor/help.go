package main

import (
	"fmt"
	"io"
	"strings"

	mdanchor "github.com/alnah/go-mdanchor"
	"github.com/alnah/go-mdanchor/internal/pipeline"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdanchor [flags] <input>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown to HTML with unique heading anchors and wrapped tables.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown files or directories, - for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .html file, directory, or - for stdout")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-file render timeout (default 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --no-gfm              Disable GitHub Flavored Markdown")
	fmt.Fprintln(w, "      --pedantic            Plain markdown only (implies --no-gfm)")
	fmt.Fprintln(w, "      --sanitize            Omit raw HTML")
	fmt.Fprintln(w, "      --breaks              Render line breaks as <br>")
	fmt.Fprintln(w, "      --xhtml               Self-closing void tags")
	fmt.Fprintln(w, "      --header-prefix <s>   Prefix for every heading id")
	fmt.Fprintln(w, "      --highlight <style>   Highlight code blocks with a chroma style")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -s, --standalone          Write a complete HTML page")
	fmt.Fprintln(w, "      --style <name|path>   Built-in style or CSS file")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/ and templates/")
	fmt.Fprintln(w, "      --title <s>           Page title (\"\" = first heading)")
	fmt.Fprintln(w, "      --lang <tag>          Page language (default en)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc                 Add a numbered table of contents")
	fmt.Fprintln(w, "      --toc-title <s>       TOC heading text")
	fmt.Fprintln(w, "      --toc-min-depth <n>   Shallowest heading level (1-6, default 2)")
	fmt.Fprintln(w, "      --toc-max-depth <n>   Deepest heading level (1-6, default 3)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show sizes and timing")
	fmt.Fprintln(w, "      --debug               Debug logging and resolved config dump")
	fmt.Fprintln(w, "      --print-config        Print the resolved config as YAML")
	fmt.Fprintln(w, "      --list-styles         List built-in and highlight styles")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDANCHOR_CONFIG, MDANCHOR_OUTPUT_DIR, MDANCHOR_STYLE, MDANCHOR_HEADER_PREFIX,")
	fmt.Fprintln(w, "  MDANCHOR_ASSET_PATH, MDANCHOR_TIMEOUT, MDANCHOR_WORKERS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  mdanchor README.md                  Write README.html next to the source")
	fmt.Fprintln(w, "  mdanchor -s --toc docs/ -o site/    Convert a tree into standalone pages")
	fmt.Fprintln(w, "  cat notes.md | mdanchor -           Print the fragment to stdout")
}

// printStyles lists built-in document styles and chroma highlight styles.
func printStyles(w io.Writer) {
	fmt.Fprintln(w, "Document styles:")
	for _, name := range mdanchor.StyleNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlight styles:")
	fmt.Fprintf(w, "  %s\n", strings.Join(pipeline.HighlightStyles(), ", "))
}
