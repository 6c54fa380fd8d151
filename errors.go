package mdanchor

import (
	"errors"

	"github.com/alnah/go-mdanchor/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrNilCallback   = errors.New("callback cannot be nil")
	ErrInvalidOption = errors.New("invalid option")

	// ErrHTMLConversion wraps errors returned by the Markdown parser.
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Document errors.
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")
	ErrDocumentRender  = pipeline.ErrDocumentRender

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
