package docgen

import (
	"fmt"

	"github.com/alnah/go-docgen/internal/fileutil"
)

// WriteFile stores pdf at path with a single write, creating missing
// parent directories. The file is replaced atomically: failures wrap
// ErrWritePDF and leave any previous file at path untouched.
func WriteFile(path string, pdf []byte) error {
	if err := fileutil.WriteFileOnce(path, pdf, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}
