package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	docgen "github.com/alnah/go-docgen"
)

var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputCollision    = errors.New("several inputs map to the same PDF")
)

// FileToConvert pairs a Markdown source with the PDF it produces.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles lists the Markdown files under inputPath. A directory is
// walked in lexical order, hidden subdirectories are skipped, and the tree
// is mirrored under outputDir. Two sources that would write the same PDF
// (a.md and a.markdown) are rejected before anything is converted.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToConvert{{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir, ""),
		}}, nil
	}

	var files []FileToConvert
	claimed := make(map[string]string)
	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isMarkdown(path) {
			return nil
		}

		out := resolveOutputPath(path, outputDir, inputPath)
		if prev, ok := claimed[out]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", ErrOutputCollision, prev, path, out)
		}
		claimed[out] = path
		files = append(files, FileToConvert{InputPath: path, OutputPath: out})
		return nil
	}
	if err := filepath.WalkDir(inputPath, walk); err != nil {
		return nil, err
	}
	return files, nil
}

// resolveOutputPath maps a source to its PDF path. With no outputDir the PDF
// sits next to the source; an outputDir ending in .pdf names the file
// itself; otherwise the path relative to baseInputDir is kept.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".pdf"

	switch {
	case outputDir == "":
		return filepath.Join(filepath.Dir(inputPath), name)
	case strings.EqualFold(filepath.Ext(outputDir), ".pdf"):
		return outputDir
	}

	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(rel), name)
		}
	}
	return filepath.Join(outputDir, name)
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func validateMarkdownExtension(path string) error {
	if isMarkdown(path) {
		return nil
	}
	return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
}

// validateWorkers accepts 0 (automatic) up to docgen.MaxPoolSize.
func validateWorkers(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	case n > docgen.MaxPoolSize:
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, docgen.MaxPoolSize)
	}
	return nil
}
