package page_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-blog-builder/internal/page"
)

const refPage = `<!doctype html>
<html><head>
<style>body { color: #333; }</style>
<style>.post { max-width: 42rem; }</style>
</head>
<body>
<div id="app"></div>
<footer class="site-footer"><p>© 2026 博主</p></footer>
</body></html>`

func TestExtractTheme(t *testing.T) {
	f := filepath.Join(t.TempDir(), "index.html")
	_ = os.WriteFile(f, []byte(refPage), 0o644)
	th, err := page.ExtractTheme(f)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(th.CSS, "color: #333") || !strings.Contains(th.CSS, ".post") {
		t.Fatalf("css fragments missing: %q", th.CSS)
	}
	if !strings.Contains(th.Footer, "<footer") || !strings.Contains(th.Footer, "© 2026 博主") {
		t.Fatalf("footer missing: %q", th.Footer)
	}
}

func TestExtractTheme_MissingFileFatal(t *testing.T) {
	if _, err := page.ExtractTheme(filepath.Join(t.TempDir(), "nope.html")); err == nil {
		t.Fatalf("missing template page must be an error")
	}
}

func TestExtractTheme_NoStyleNoFooter(t *testing.T) {
	f := filepath.Join(t.TempDir(), "index.html")
	_ = os.WriteFile(f, []byte("<html><body>bare</body></html>"), 0o644)
	th, err := page.ExtractTheme(f)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if th.CSS != "" || th.Footer != "" {
		t.Fatalf("expect empty fragments: %+v", th)
	}
}
