package assets

// Notes:
// - Symlink escape is only tested where os.Symlink works; the test skips
//   when the platform refuses to create links.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newStyleDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	for name, css := range files {
		if err := os.WriteFile(filepath.Join(dir, "styles", name), []byte(css), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// ---------------------------------------------------------------------------
// TestNewFilesystemLoader - Base path validation
// ---------------------------------------------------------------------------

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.css")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid directory", t.TempDir(), false},
		{"empty path", "", true},
		{"missing directory", filepath.Join(t.TempDir(), "missing"), true},
		{"regular file", file, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFilesystemLoader(tt.path)
			if tt.wantErr && !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("error = %v, want ErrInvalidBasePath", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader_LoadStyle - Reading custom styles
// ---------------------------------------------------------------------------

func TestFilesystemLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := newStyleDir(t, map[string]string{"brand.css": "body { color: red; }"})
	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatal(err)
	}

	css, err := loader.LoadStyle("brand")
	if err != nil {
		t.Fatalf("LoadStyle() unexpected error: %v", err)
	}
	if css != "body { color: red; }" {
		t.Errorf("LoadStyle() = %q", css)
	}

	if _, err := loader.LoadStyle("absent"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(absent) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadStyle("../brand"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(../brand) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := filepath.Join(t.TempDir(), "secret.css")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	dir := newStyleDir(t, nil)
	if err := os.Symlink(outside, filepath.Join(dir, "styles", "leak.css")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loader.LoadStyle("leak"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(leak) error = %v, want ErrPathTraversal", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolver - Custom-first lookup
// ---------------------------------------------------------------------------

func TestResolver(t *testing.T) {
	t.Parallel()

	dir := newStyleDir(t, map[string]string{"report.css": "/* custom report */"})

	tests := []struct {
		name      string
		customDir string
		style     string
		want      string
		wantErr   error
	}{
		{name: "custom overrides embedded", customDir: dir, style: "report", want: "/* custom report */"},
		{name: "falls back to embedded", customDir: dir, style: "plain"},
		{name: "embedded only", style: "report"},
		{name: "unknown everywhere", customDir: dir, style: "neon", wantErr: ErrStyleNotFound},
		{name: "validation not masked by fallback", customDir: dir, style: "a/b", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewResolver(tt.customDir)
			if err != nil {
				t.Fatal(err)
			}
			css, err := r.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStyle() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle() unexpected error: %v", err)
			}
			if tt.want != "" && css != tt.want {
				t.Errorf("LoadStyle() = %q, want %q", css, tt.want)
			}
			if css == "" {
				t.Error("LoadStyle() returned empty CSS")
			}
		})
	}
}

func TestNewResolver_InvalidDir(t *testing.T) {
	t.Parallel()

	if _, err := NewResolver(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewResolver() error = %v, want ErrInvalidBasePath", err)
	}
}
