package pipeline

import (
	"context"
	"testing"
)

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"body { background: #3b3b3b; }", "body { background: #3b3b3b; }"},
		{"</style>", `<\/style>`},
		{"</STYLE></script>", `<\/STYLE><\/script>`},
		{"</</style>", `<\/<\/style>`},
	}

	for _, tt := range tests {
		if got := sanitizeCSS(tt.input); got != tt.want {
			t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	const css = "body { color: #e8e8e8; }"

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "empty CSS leaves HTML alone",
			html: "<html><head></head><body>Report</body></html>",
			want: "<html><head></head><body>Report</body></html>",
		},
		{
			name: "before closing head",
			html: "<html><HEAD></HEAD><body>Report</body></html>",
			css:  css,
			want: "<html><HEAD><style>" + css + "</style></HEAD><body>Report</body></html>",
		},
		{
			name: "after body tag with attributes",
			html: `<html><body class="report">Report</body></html>`,
			css:  css,
			want: `<html><body class="report"><style>` + css + `</style>Report</body></html>`,
		},
		{
			name: "prepended to a fragment",
			html: "<p>Report</p>",
			css:  css,
			want: "<style>" + css + "</style><p>Report</p>",
		},
		{
			name: "closing tags in CSS are neutralized",
			html: "<head></head>",
			css:  "</style><script>x()</script>",
			want: `<head><style><\/style><script>x()<\/script></style></head>`,
		},
	}

	injector := &CSSInjection{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := injector.InjectCSS(context.Background(), tt.html, tt.css); got != tt.want {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleInsertionPoint(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"<html><head><title>Q3</title></head><body></body></html>": len("<html><head><title>Q3</title>"),
		"<body lang=\"en\"><p>x</p></body>":                        len("<body lang=\"en\">"),
		"<body":                                                    0,
		"<h1>Report</h1>":                                          0,
	}
	for doc, want := range tests {
		if got := styleInsertionPoint(doc); got != want {
			t.Errorf("styleInsertionPoint(%q) = %d, want %d", doc, got, want)
		}
	}
}

func TestInjectCSS_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<html><head></head><body>Report</body></html>"
	if got := (&CSSInjection{}).InjectCSS(ctx, html, "p{}"); got != html {
		t.Errorf("InjectCSS() with cancelled context = %q, want HTML unchanged", got)
	}
}
