// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// userConfigMarker identifies the user-level config directory among search paths.
var userConfigMarker = "mdanchor" + string(filepath.Separator)

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, userConfigMarker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForConfigParse returns hints for malformed config files.
func ForConfigParse() string {
	return format("sections: markdown, anchors, tables, highlight, output, toc, assets")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to a .css file")
}

// ForHighlightStyle returns hints for unknown chroma styles, listing up to
// limit suggestions whose name contains the requested one.
func ForHighlightStyle(requested string, available []string, limit int) string {
	var matches []string
	needle := strings.ToLower(requested)
	for _, name := range available {
		if needle != "" && strings.Contains(strings.ToLower(name), needle) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		matches = available
	}
	if limit > 0 && len(matches) > limit {
		matches = append(matches[:limit:limit], "...")
	}
	return formatHints([]string{
		"try: " + strings.Join(matches, ", "),
		"list all with --list-styles",
	})
}

// ForNoInput returns hints when no Markdown file was found.
func ForNoInput() string {
	return format("pass .md files or directories, or - for stdin")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
