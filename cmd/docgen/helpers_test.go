package main

// Notes:
// - Test doubles shared across the cmd tests: a recording converter, a pool
//   that hands it out, and an Environment with captured output.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	docgen "github.com/alnah/go-docgen"
)

// ---------------------------------------------------------------------------
// Mock Implementations - Converter and pool
// ---------------------------------------------------------------------------

// mockConverter records inputs and returns convertFunc's result, or a
// minimal chrome result.
type mockConverter struct {
	mu          sync.Mutex
	calls       []docgen.Input
	convertFunc func(ctx context.Context, input docgen.Input) (*docgen.ConvertResult, error)
}

func (m *mockConverter) Convert(ctx context.Context, input docgen.Input) (*docgen.ConvertResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()

	if m.convertFunc != nil {
		return m.convertFunc(ctx, input)
	}
	return &docgen.ConvertResult{PDF: []byte("%PDF-1.4 mock"), Engine: docgen.EngineChrome}, nil
}

func (m *mockConverter) getCalls() []docgen.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]docgen.Input{}, m.calls...)
}

// testPool hands out one shared mockConverter up to size times.
type testPool struct {
	mock       *mockConverter
	size       int
	acquireErr error
	sem        chan CLIConverter

	mu     sync.Mutex
	closed bool
	opts   []docgen.Option
}

func newTestPool(mock *mockConverter, size int) *testPool {
	size = max(size, 1)
	p := &testPool{mock: mock, size: size, sem: make(chan CLIConverter, size)}
	for range size {
		p.sem <- mock
	}
	return p
}

func (p *testPool) Acquire() (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return <-p.sem, nil
}

func (p *testPool) Release(c CLIConverter) {
	p.sem <- c
}

func (p *testPool) Size() int {
	return p.size
}

func (p *testPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *testPool) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// ---------------------------------------------------------------------------
// Environment - Captured output, fixed clock, fake process environment
// ---------------------------------------------------------------------------

type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	pool   *testPool
	size   int // size requested from NewPool
}

// newTestEnv returns an Environment whose pool serves mock and whose
// process environment is vars.
func newTestEnv(mock *mockConverter, vars map[string]string) *testEnv {
	te := &testEnv{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	te.Environment = &Environment{
		Now:     func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout:  te.stdout,
		Stderr:  te.stderr,
		Getenv:  func(k string) string { return vars[k] },
		Environ: func() []string { return environ },
		NewPool: func(size int, opts ...docgen.Option) Pool {
			te.size = size
			te.pool = newTestPool(mock, size)
			te.pool.opts = opts
			return te.pool
		},
	}
	return te
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}
