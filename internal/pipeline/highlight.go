package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownHighlightStyle indicates the chroma style does not exist.
var ErrUnknownHighlightStyle = errors.New("unknown highlight style")

// HighlightStyles returns the names of all available chroma styles.
func HighlightStyles() []string {
	return styles.Names()
}

// ValidateHighlightStyle returns ErrUnknownHighlightStyle if name is not a
// registered chroma style.
func ValidateHighlightStyle(name string) error {
	if !slices.Contains(styles.Names(), name) {
		return fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, name)
	}
	return nil
}

// HighlightCSS returns the stylesheet matching the CSS classes emitted for
// highlighted code blocks.
func HighlightCSS(name string) (string, error) {
	if err := ValidateHighlightStyle(name); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(name)); err != nil {
		return "", fmt.Errorf("writing %s styles: %w", name, err)
	}
	return buf.String(), nil
}
