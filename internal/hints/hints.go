// Package hints builds the short "hint:" suffixes appended to CLI error
// messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-docgen/internal/fileutil"
)

// IsInContainer reports whether the process runs inside a container.
// Replaced in tests.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

func inCI() bool {
	for _, key := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests environment fixes for a Chrome launch failure
// and points at the native engine, which needs no browser.
func ForBrowserConnect() string {
	var hints []string

	if (inCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use a custom Chrome")
	}
	hints = append(hints, "or use --engine native")

	return formatHints(hints)
}

// ForTimeout suggests raising the timeout.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound suggests --config and, when one of the searched paths
// is the per-user config directory, creating a file there.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-docgen") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory is appended to output write failures.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForEngine lists the accepted engine names.
func ForEngine(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available engines: " + strings.Join(available, ", "))
}

// ForColor shows the accepted colour syntax.
func ForColor() string {
	return format("use a hex colour such as #3B3B3B or #fff")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
