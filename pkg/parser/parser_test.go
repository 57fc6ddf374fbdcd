package parser

import (
	"strings"
	"testing"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Test Article - Example</title></head>
<body>
  <nav><a href="/">Home</a><a href="/about">About</a></nav>
  <article>
    <h1>Test Article</h1>
    <p>The quick brown fox jumps over the lazy dog. This opening paragraph
    carries enough words for readability to consider it real content, which
    is what the extraction path under test relies on.</p>
    <p>A second paragraph follows with more body text so that the main
    content detection has a fair amount of material to work with here.</p>
  </article>
  <footer>Copyright 2026</footer>
</body>
</html>`

const bareHTML = `<html>
<head><title>Bare Page</title><style>body { color: red; }</style></head>
<body>
  <script>console.log("should not appear");</script>
  <div><span>visible text one</span></div>
  <div><span>visible text two</span></div>
</body>
</html>`

func TestExtractText_Article(t *testing.T) {
	p := &Parser{}

	page, err := p.ExtractText("https://example.com/article", articleHTML)
	if err != nil {
		t.Fatalf("ExtractText() failed: %v", err)
	}

	if page.URL != "https://example.com/article" {
		t.Errorf("URL = %q", page.URL)
	}
	if !strings.Contains(page.Text, "quick brown fox") {
		t.Errorf("text missing article body: %q", page.Text)
	}
	if page.Title == "" {
		t.Error("expected a title")
	}
}

func TestExtractText_FallbackStripsTags(t *testing.T) {
	p := &Parser{}

	page, err := p.ExtractText("https://example.com/bare", bareHTML)
	if err != nil {
		t.Fatalf("ExtractText() failed: %v", err)
	}

	if !strings.Contains(page.Text, "visible text one") ||
		!strings.Contains(page.Text, "visible text two") {
		t.Errorf("fallback lost visible text: %q", page.Text)
	}
	if strings.Contains(page.Text, "should not appear") {
		t.Errorf("script content leaked into text: %q", page.Text)
	}
	if strings.Contains(page.Text, "color: red") {
		t.Errorf("style content leaked into text: %q", page.Text)
	}
}

func TestExtractText_EmptyPage(t *testing.T) {
	p := &Parser{}

	page, err := p.ExtractText("https://example.com/empty", "<html><body></body></html>")
	if err != nil {
		t.Fatalf("ExtractText() failed: %v", err)
	}
	if strings.TrimSpace(page.Text) != "" {
		t.Errorf("expected empty text, got %q", page.Text)
	}
}

func TestExtractText_BadURL(t *testing.T) {
	p := &Parser{}

	if _, err := p.ExtractText("https://exa\x7fmple.com", articleHTML); err == nil {
		t.Error("expected error for unparseable URL")
	}
}
