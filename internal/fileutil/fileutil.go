// Package fileutil provides file and path helpers shared by the converter
// and the CLI.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrEmptyPath              = errors.New("path cannot be empty")
	ErrShortWrite             = errors.New("short write")
)

// WriteTempFile stores content in a fresh temporary file with the given
// extension. The returned cleanup removes the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	f, err := os.CreateTemp("", "docgen-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, werr := f.WriteString(content); werr != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", werr)
	}
	if cerr := f.Close(); cerr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", cerr)
	}

	return path, cleanup, nil
}

// WriteFileOnce writes data to a temporary file next to path with a single
// Write call, then renames it over path. Missing parent directories are
// created with mode 0o755. On failure the temporary file is removed and an
// existing file at path is left as it was.
func WriteFileOnce(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	tmp := f.Name()

	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = ErrShortWrite
	}
	if err == nil {
		err = f.Chmod(perm)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
