package main

import (
	"errors"
	"os"

	mdanchor "github.com/alnah/go-mdanchor"
	"github.com/alnah/go-mdanchor/internal/config"
)

// Exit codes for the mdanchor CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidClass) ||
		errors.Is(err, config.ErrInvalidDepth) ||
		errors.Is(err, mdanchor.ErrInvalidOption) ||
		errors.Is(err, mdanchor.ErrEmptyMarkdown) ||
		errors.Is(err, mdanchor.ErrInvalidTOCDepth) ||
		errors.Is(err, mdanchor.ErrStyleNotFound) ||
		errors.Is(err, mdanchor.ErrTemplateNotFound) ||
		errors.Is(err, mdanchor.ErrInvalidAssetPath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	return ExitGeneral
}
