package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	docgen "github.com/alnah/go-docgen"
	"github.com/alnah/go-docgen/internal/pdfemit"
)

// Doctor statuses, from best to worst.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

type doctorResult struct {
	Status   string     `json:"status"`
	Engines  engineInfo `json:"engines"`
	Chrome   chromeInfo `json:"chrome"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Styles   []string   `json:"styles"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// engineInfo reports which engines can run and what auto resolves to.
type engineInfo struct {
	Native bool   `json:"native"`
	Chrome bool   `json:"chrome"`
	Auto   string `json:"auto"`
}

type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

func (r *doctorResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *doctorResult) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// runDoctorCmd prints the diagnostics and returns 1 only when an error
// was found. Warnings still exit 0.
func runDoctorCmd(args []string, env *Environment) int {
	asJSON := false
	for _, arg := range args {
		asJSON = asJSON || arg == "--json"
	}

	result := runDoctor(env.Getenv)
	if asJSON {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

func runDoctor(getenv func(string) string) *doctorResult {
	r := &doctorResult{
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  getenv("ROD_NO_SANDBOX"),
			BrowserBin: getenv("ROD_BROWSER_BIN"),
		},
		Styles: docgen.Styles(),
	}

	checkNative(r)
	checkChrome(r)
	checkEnvironment(r, getenv)
	checkSystem(r)

	r.Engines.Chrome = r.Chrome.Found
	switch {
	case r.Chrome.Found:
		r.Engines.Auto = string(docgen.EngineChrome)
	case r.Engines.Native:
		r.Engines.Auto = string(docgen.EngineNative)
	default:
		r.Engines.Auto = "none"
	}

	switch {
	case len(r.Errors) > 0:
		r.Status = statusErrors
	case len(r.Warnings) > 0:
		r.Status = statusWarnings
	default:
		r.Status = statusReady
	}
	return r
}

// checkNative renders a two-line document and verifies its cross-reference
// table, so a broken build shows up here rather than in a batch.
func checkNative(r *doctorResult) {
	pdf, err := docgen.RenderRecords([]docgen.TextRecord{
		{Content: "docgen doctor", Emphasized: true},
		{Content: "native engine self-test"},
	}, nil)
	if err == nil {
		err = pdfemit.Verify(pdf)
	}
	if err != nil {
		r.fail("native engine self-test failed: %v", err)
		return
	}
	r.Engines.Native = true
}

// checkChrome looks for a browser. Not finding one is a warning because
// auto still produces native output.
func checkChrome(r *doctorResult) {
	path := r.Env.BrowserBin
	if path == "" {
		var found bool
		if path, found = launcher.LookPath(); !found {
			r.warn("Chrome/Chromium not found; auto engine will use native output. Install Chrome or set ROD_BROWSER_BIN")
			return
		}
	}
	if _, err := os.Stat(path); err != nil {
		r.warn("Chrome not found at %s; auto engine will use native output", path)
		return
	}

	r.Chrome.Found = true
	r.Chrome.Path = path
	r.Chrome.Sandbox = r.Env.NoSandbox != "1"

	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- detected browser binary
	if err != nil {
		r.warn("Could not get Chrome version: %v", err)
		return
	}
	r.Chrome.Version = strings.TrimSpace(string(out))
}

var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

func checkEnvironment(r *doctorResult, getenv func(string) string) {
	r.Env.Container, r.Env.ContainerHint = isContainer(getenv)
	for _, v := range ciVars {
		if getenv(v) != "" {
			r.Env.CI = true
			break
		}
	}

	sandboxed := r.Env.NoSandbox != "1"
	if r.Chrome.Found && sandboxed && (r.Env.Container || r.Env.CI) {
		r.warn("Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// isContainer reports whether a container was detected and which signal
// gave it away.
func isContainer(getenv func(string) string) (bool, string) {
	if getenv("DOCGEN_CONTAINER") == "1" {
		return true, "DOCGEN_CONTAINER=1"
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	if v := getenv("container"); v != "" {
		return true, "container=" + v
	}
	if getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory the chrome engine writes HTML to.
func checkSystem(r *doctorResult) {
	dir := os.TempDir()
	probe := filepath.Join(dir, "docgen-doctor-test")
	if err := os.WriteFile(probe, []byte("test"), 0o600); err != nil {
		r.fail("Temp directory not writable: %s", dir)
		return
	}
	_ = os.Remove(probe)
	r.System.TempWritable = true
}

func printDoctorResult(w io.Writer, r *doctorResult) {
	line := func(ok bool, okTag, badTag, format string, args ...any) {
		tag := okTag
		if !ok {
			tag = badTag
		}
		fmt.Fprintf(w, "  [%s] "+format+"\n", append([]any{tag}, args...)...)
	}

	fmt.Fprintln(w, "docgen doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Engines")
	line(r.Engines.Native, "OK", "ERROR", "native: %s", availability(r.Engines.Native))
	line(r.Engines.Chrome, "OK", "WARN", "chrome: %s", availability(r.Engines.Chrome))
	line(r.Engines.Auto != "none", "OK", "ERROR", "auto: uses %s", r.Engines.Auto)
	fmt.Fprintln(w)

	if r.Chrome.Found {
		fmt.Fprintln(w, "Chrome/Chromium")
		line(true, "OK", "", "Found at %s", r.Chrome.Path)
		if r.Chrome.Version != "" {
			line(true, "OK", "", "Version: %s", r.Chrome.Version)
		}
		sandbox := "enabled"
		if !r.Chrome.Sandbox {
			sandbox = "disabled (ROD_NO_SANDBOX=1)"
		}
		line(true, "OK", "", "Sandbox: %s", sandbox)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Environment")
	line(true, "OK", "", "Platform: %s/%s", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		line(true, "OK", "", "Container: detected (%s)", r.Env.ContainerHint)
	}
	if r.Env.CI {
		line(true, "OK", "", "CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	temp := "writable"
	if !r.System.TempWritable {
		temp = "not writable"
	}
	line(r.System.TempWritable, "OK", "ERROR", "Temp directory: %s", temp)
	line(len(r.Styles) > 0, "OK", "WARN", "Styles: %s", strings.Join(r.Styles, ", "))
	fmt.Fprintln(w)

	printDoctorList(w, "Warnings:", "WARN", r.Warnings)
	printDoctorList(w, "Errors:", "ERROR", r.Errors)

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: READY")
	case statusWarnings:
		fmt.Fprintln(w, "Status: READY (with warnings)")
	default:
		fmt.Fprintln(w, "Status: NOT READY")
	}
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "unavailable"
}

func printDoctorList(w io.Writer, title, tag string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	for _, item := range items {
		fmt.Fprintf(w, "  [%s] %s\n", tag, item)
	}
	fmt.Fprintln(w)
}
