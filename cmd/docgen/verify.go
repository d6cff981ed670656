package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-docgen/internal/pdfemit"
)

// ErrReadPDF wraps failures reading a file given to verify.
var ErrReadPDF = errors.New("failed to read PDF file")

// runVerify checks the cross-reference table and object references of
// each file. Every file is checked even after a failure.
func runVerify(args []string, quiet bool, env *Environment) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: verify requires at least one PDF file", ErrUsage)
	}

	var firstErr error
	failed := 0
	for _, path := range args {
		err := verifyFile(path)
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", path, err)
			continue
		}
		if !quiet {
			fmt.Fprintf(env.Stdout, "OK %s\n", path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s) failed verification: %w", ErrConversionFailed, failed, len(args), firstErr)
	}
	return nil
}

func verifyFile(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadPDF, err)
	}
	return pdfemit.Verify(data)
}
