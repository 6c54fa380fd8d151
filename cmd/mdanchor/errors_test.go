package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	mdanchor "github.com/alnah/go-mdanchor"
	"github.com/alnah/go-mdanchor/internal/config"
	"github.com/alnah/go-mdanchor/internal/pipeline"
)

// ---------------------------------------------------------------------------
// TestHintFor - Actionable hints for errors
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Highlight.Style = "mono"

	tests := []struct {
		name string
		err  error
		want string // substring; "" means no hint
	}{
		{"nil", nil, ""},
		{"timeout", fmt.Errorf("render: %w", context.DeadlineExceeded), "--timeout"},
		{"config not found", config.ErrConfigNotFound, "--config"},
		{"config parse", config.ErrConfigParse, "sections:"},
		{"output directory", ErrCreateOutputDir, "writable"},
		{"style not found", mdanchor.ErrStyleNotFound, mdanchor.DefaultStyle},
		{"highlight style", fmt.Errorf("%w: %w", mdanchor.ErrInvalidOption, pipeline.ErrUnknownHighlightStyle), "monokai"},
		{"no input", ErrNoInput, "stdin"},
		{"other", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, cfg)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want none", got)
				}
				return
			}
			if !strings.Contains(got, "hint:") || !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want hint containing %q", got, tt.want)
			}
		})
	}

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		if got := hintFor(pipeline.ErrUnknownHighlightStyle, nil); !strings.Contains(got, "--list-styles") {
			t.Errorf("hintFor() = %q, want --list-styles", got)
		}
	})
}
