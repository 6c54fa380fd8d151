package main

import (
	"context"
	"errors"

	mdanchor "github.com/alnah/go-mdanchor"
	"github.com/alnah/go-mdanchor/internal/config"
	"github.com/alnah/go-mdanchor/internal/hints"
	"github.com/alnah/go-mdanchor/internal/pipeline"
)

// highlightHintLimit caps the suggested highlight styles.
const highlightHintLimit = 6

// hintFor returns an actionable hint for err, or "" when none applies.
// cfg may be nil when the error occurred before configuration loaded.
func hintFor(err error, cfg *config.Config) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths("mdanchor"))
	case errors.Is(err, config.ErrConfigParse):
		return hints.ForConfigParse()
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, mdanchor.ErrStyleNotFound):
		return hints.ForStyleNotFound(mdanchor.StyleNames())
	case errors.Is(err, pipeline.ErrUnknownHighlightStyle):
		requested := ""
		if cfg != nil {
			requested = cfg.Highlight.Style
		}
		return hints.ForHighlightStyle(requested, pipeline.HighlightStyles(), highlightHintLimit)
	case errors.Is(err, ErrNoInput):
		return hints.ForNoInput()
	default:
		return ""
	}
}
