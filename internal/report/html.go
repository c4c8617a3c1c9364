package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/requinsolutions/aidetect/internal/scan"
)

// pageData holds the data passed to the HTML page template.
type pageData struct {
	Title   string
	Content template.HTML
	Brand   string
	BrandBy string
}

// newMarkdown builds the markdown converter. Raw HTML must pass through for
// the highlight spans; every server-sourced text node inside that raw HTML
// is escaped by the markdown builder before it gets here.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)
}

// RenderHTML converts the intermediate markdown report into the final
// self-contained HTML document.
func RenderHTML(markdown string) (string, error) {
	var body bytes.Buffer
	if err := newMarkdown().Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("converting report markdown: %w", err)
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing page template: %w", err)
	}

	data := pageData{
		Title:   brandTitle + " Report",
		Content: template.HTML(body.String()),
		Brand:   brandTitle,
		BrandBy: brandSubtitle,
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("rendering report page: %w", err)
	}
	return out.String(), nil
}

// WriteHTML exports the cached scan as an HTML document under outDir and
// returns the written path.
func WriteHTML(last *scan.LastScan, userEmail, outDir string, now time.Time) (string, error) {
	md := BuildMarkdown(last, userEmail, now)
	page, err := RenderHTML(md)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports dir: %w", err)
	}
	path := filepath.Join(outDir, HTMLFileName(userEmail, now))
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// WriteMarkdown exports the intermediate markdown report itself.
func WriteMarkdown(last *scan.LastScan, userEmail, outDir string, now time.Time) (string, error) {
	md := BuildMarkdown(last, userEmail, now)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports dir: %w", err)
	}
	path := filepath.Join(outDir, MarkdownFileName(userEmail, now))
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
