package pipeline

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestRebaseRelativePaths(t *testing.T) {
	t.Parallel()

	root := "/work"
	if runtime.GOOS == "windows" {
		root = `C:\work`
	}
	sourceDir := filepath.Join(root, "docs", "guide")
	outputDir := filepath.Join(root, "site")

	tests := []struct {
		name         string
		html         string
		wantContains []string
	}{
		{
			name:         "relative image",
			html:         `<img src="img/logo.png"/>`,
			wantContains: []string{`src="../docs/guide/img/logo.png"`},
		},
		{
			name:         "parent relative link",
			html:         `<a href="../other.md">x</a>`,
			wantContains: []string{`href="../docs/other.md"`},
		},
		{
			name:         "fragment preserved",
			html:         `<a href="ref.md#usage">x</a>`,
			wantContains: []string{`href="../docs/guide/ref.md#usage"`},
		},
		{
			name:         "heading anchor untouched",
			html:         `<h2 id="usage"><a href="#usage" class="anchor"></a>Usage</h2>`,
			wantContains: []string{`href="#usage"`, `id="usage"`},
		},
		{
			name:         "urls untouched",
			html:         `<a href="https://example.com/a">a</a><a href="mailto:me@example.com">m</a><img src="data:image/png;base64,AA"/>`,
			wantContains: []string{`href="https://example.com/a"`, `href="mailto:me@example.com"`, `src="data:image/png;base64,AA"`},
		},
		{
			name:         "absolute and protocol relative untouched",
			html:         `<img src="/abs.png"/><img src="//cdn.example.com/x.png"/>`,
			wantContains: []string{`src="/abs.png"`, `src="//cdn.example.com/x.png"`},
		},
		{
			name:         "table container kept",
			html:         `<div class="table-container"><table><tbody><tr><td><a href="a.md">a</a></td></tr></tbody></table></div>`,
			wantContains: []string{`<div class="table-container"><table>`, `href="../docs/guide/a.md"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RebaseRelativePaths(tt.html, sourceDir, outputDir)
			if err != nil {
				t.Fatalf("RebaseRelativePaths() error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("RebaseRelativePaths() = %q, want to contain %q", got, want)
				}
			}
		})
	}
}

func TestRebaseRelativePaths_NoOp(t *testing.T) {
	t.Parallel()

	html := `<img src="img/logo.png">`

	tests := []struct {
		name      string
		sourceDir string
		outputDir string
	}{
		{name: "empty source", sourceDir: "", outputDir: "out"},
		{name: "empty output", sourceDir: "docs", outputDir: ""},
		{name: "same directory", sourceDir: "docs", outputDir: "./docs/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RebaseRelativePaths(html, tt.sourceDir, tt.outputDir)
			if err != nil {
				t.Fatalf("RebaseRelativePaths() error: %v", err)
			}
			if got != html {
				t.Errorf("RebaseRelativePaths() = %q, want unchanged", got)
			}
		})
	}
}

func TestRebaseRelativePaths_FullDocument(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html><html><head></head><body><img src="a.png"></body></html>`
	got, err := RebaseRelativePaths(html, filepath.Join("x", "src"), filepath.Join("x", "out"))
	if err != nil {
		t.Fatalf("RebaseRelativePaths() error: %v", err)
	}
	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Errorf("RebaseRelativePaths() = %q, want doctype kept", got)
	}
	if !strings.Contains(got, `src="../src/a.png"`) {
		t.Errorf("RebaseRelativePaths() = %q, want rebased image", got)
	}
}

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"", false},
		{"#anchor", false},
		{"?q=1", false},
		{"http://x", false},
		{"mailto:a@b", false},
		{"/abs", false},
		{"//cdn", false},
		{"img.png", true},
		{"./img.png", true},
		{"../a/b.md", true},
		{"dir.v1/a:b.md", true},
	}

	for _, tt := range tests {
		if got := isRelativePath(tt.path); got != tt.want {
			t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
