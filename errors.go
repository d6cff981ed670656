package docgen

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput     = errors.New("input requires exactly one of Markdown or Records")
	ErrFrontMatter    = errors.New("invalid front matter")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrLayout         = errors.New("page layout failed")
	ErrWritePDF       = errors.New("writing PDF failed")

	// Browser failures. With EngineAuto any of these switches to the
	// native engine.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Option validation errors.
	ErrInvalidEngine    = errors.New("invalid engine")
	ErrInvalidColor     = errors.New("invalid color")
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// isBrowserFailure reports whether err came from the chrome engine itself
// rather than from the input or the caller's context.
func isBrowserFailure(err error) bool {
	return errors.Is(err, ErrBrowserConnect) ||
		errors.Is(err, ErrPageCreate) ||
		errors.Is(err, ErrPageLoad) ||
		errors.Is(err, ErrPDFGeneration)
}
