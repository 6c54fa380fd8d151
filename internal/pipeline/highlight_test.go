package pipeline

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css, err := HighlightCSS(DefaultHighlightStyle)
	if err != nil {
		t.Fatalf("HighlightCSS(%q) error: %v", DefaultHighlightStyle, err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("HighlightCSS() = %q, want .chroma rules", css)
	}
}

func TestHighlightCSS_UnknownStyle(t *testing.T) {
	t.Parallel()

	_, err := HighlightCSS("no-such-style")
	if !errors.Is(err, ErrUnknownHighlightStyle) {
		t.Errorf("HighlightCSS() error = %v, want ErrUnknownHighlightStyle", err)
	}
}

func TestHighlightStyles(t *testing.T) {
	t.Parallel()

	names := HighlightStyles()
	if !slices.Contains(names, DefaultHighlightStyle) {
		t.Errorf("HighlightStyles() = %v, want to include %q", names, DefaultHighlightStyle)
	}
}
