package main

import (
	"context"
	"errors"
	"os"

	docgen "github.com/alnah/go-docgen"
	"github.com/alnah/go-docgen/internal/config"
	"github.com/alnah/go-docgen/internal/hints"
)

// Exit codes for the docgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, docgen.ErrBrowserConnect) ||
		errors.Is(err, docgen.ErrPageCreate) ||
		errors.Is(err, docgen.ErrPageLoad) ||
		errors.Is(err, docgen.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadPDF) ||
		errors.Is(err, docgen.ErrWritePDF) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, docgen.ErrEmptyInput) ||
		errors.Is(err, docgen.ErrFrontMatter) ||
		errors.Is(err, docgen.ErrInvalidEngine) ||
		errors.Is(err, docgen.ErrInvalidColor) ||
		errors.Is(err, docgen.ErrStyleNotFound) ||
		errors.Is(err, docgen.ErrInvalidAssetPath) ||
		errors.Is(err, docgen.ErrLayout) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputCollision) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable suffix for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, docgen.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, docgen.ErrInvalidEngine):
		return hints.ForEngine(docgen.Engines())
	case errors.Is(err, docgen.ErrInvalidColor):
		return hints.ForColor()
	case errors.Is(err, docgen.ErrWritePDF):
		return hints.ForOutputDirectory()
	}

	var notFound *configNotFoundError
	if errors.As(err, &notFound) {
		return hints.ForConfigNotFound(config.SearchPaths(notFound.name))
	}
	return ""
}
