package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/requinsolutions/aidetect/internal/api"
	"github.com/requinsolutions/aidetect/internal/scan"
)

var testNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func sampleScan() *scan.LastScan {
	return &scan.LastScan{
		Prediction: api.Prediction{
			TokensLeft:              4,
			OverallAIProbability:    70,
			OverallHumanProbability: 30,
			FinalDocumentLabel:      "AI",
			Sentences: []api.SentenceResult{
				{Sentence: "This <b>sentence</b> was generated.", AIProbability: 91, HumanProbability: 9, FinalLabel: "AI"},
				{Sentence: "A human wrote this one.", AIProbability: 12, HumanProbability: 88, FinalLabel: "Human"},
			},
			SentencesProcessed: 2,
			SentencesReceived:  2,
		},
		SourceText: "This <b>sentence</b> was generated. A human wrote this one.",
	}
}

func TestFileNames(t *testing.T) {
	if got := HTMLFileName("Jane.Doe@example.com", testNow); got != "report_jane_doe_example_com_2025-03-14.html" {
		t.Errorf("HTMLFileName = %q", got)
	}
	if got := MarkdownFileName("", testNow); got != "report_user_2025-03-14.md" {
		t.Errorf("MarkdownFileName = %q", got)
	}
	if got := PDFFileName("my_essay", "jane@example.com", testNow); got != "my_essay_ai_highlight_report_2025-03-14.pdf" {
		t.Errorf("PDFFileName with source = %q", got)
	}
	if got := PDFFileName("", "Jane@Example.com", testNow); got != "jane_example_com_ai_highlight_report_2025-03-14.pdf" {
		t.Errorf("PDFFileName fallback = %q", got)
	}
}

func TestReportID(t *testing.T) {
	if got := ReportID(testNow); got != "RQ-20250314-150926" {
		t.Errorf("ReportID = %q", got)
	}
}

func TestBuildMarkdown(t *testing.T) {
	md := BuildMarkdown(sampleScan(), "jane@example.com", testNow)

	for _, want := range []string{
		"# AI Text Detector Report",
		"**Report ID:** RQ-20250314-150926",
		"conic-gradient(#ef4444 0deg 252.0deg, #10b981 252.0deg 360deg)",
		"- **Final Verdict:** Likely AI-Generated",
		"- **Confidence Gap:** 40.0%",
		"- **Risk Tier:** Medium Risk",
		`<span class="ai">This &lt;b&gt;sentence&lt;/b&gt; was generated.</span>`,
		`<span class="human">A human wrote this one.</span>`,
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	// Sentence text must never reach the document unescaped.
	if strings.Contains(md, "<b>sentence</b> was generated.</span>") {
		t.Error("sentence embedded without escaping")
	}
}

func TestBuildMarkdownEmptyResult(t *testing.T) {
	last := &scan.LastScan{Prediction: api.Prediction{OverallHumanProbability: 100}}
	md := BuildMarkdown(last, "jane@example.com", testNow)

	if !strings.Contains(md, "(No highlighted output available)") {
		t.Error("missing highlighted-output placeholder")
	}
	if !strings.Contains(md, "(No source text available)") {
		t.Error("missing source-text placeholder")
	}
	if !strings.Contains(md, "- **Final Verdict:** Likely Human-Written") {
		t.Error("empty result should read as human")
	}
}

func TestFenceFor(t *testing.T) {
	if got := fenceFor("plain text"); got != "```" {
		t.Errorf("plain fence = %q", got)
	}
	if got := fenceFor("code ```inside``` here"); got != "````" {
		t.Errorf("guarded fence = %q", got)
	}
}

func TestRenderHTML(t *testing.T) {
	md := BuildMarkdown(sampleScan(), "jane@example.com", testNow)
	page, err := RenderHTML(md)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"AI Text Detector",
		"by Requin Solutions",
		`class="donut"`,
		`<span class="ai">`,
		`<span class="human">`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestWriteHTMLAndMarkdown(t *testing.T) {
	dir := t.TempDir()

	htmlPath, err := WriteHTML(sampleScan(), "jane@example.com", dir, testNow)
	if err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	if filepath.Base(htmlPath) != "report_jane_example_com_2025-03-14.html" {
		t.Errorf("html path = %q", htmlPath)
	}
	data, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("reading html: %v", err)
	}
	if !strings.Contains(string(data), "Likely AI-Generated") {
		t.Error("written html missing verdict")
	}

	mdPath, err := WriteMarkdown(sampleScan(), "jane@example.com", dir, testNow)
	if err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	if filepath.Base(mdPath) != "report_jane_example_com_2025-03-14.md" {
		t.Errorf("markdown path = %q", mdPath)
	}
}

func TestWritePDF(t *testing.T) {
	dir := t.TempDir()

	last := sampleScan()
	// Enough rows to force the detail listing onto a second page.
	for i := 0; i < 60; i++ {
		label := "Human"
		if i%3 == 0 {
			label = "AI"
		}
		last.Prediction.Sentences = append(last.Prediction.Sentences, api.SentenceResult{
			Sentence:   fmt.Sprintf("Padding sentence number %d with enough words to wrap across the row width.", i),
			FinalLabel: label,
		})
	}

	path, err := WritePDF(last, "jane@example.com", dir, testNow)
	if err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if filepath.Base(path) != "jane_example_com_ai_highlight_report_2025-03-14.pdf" {
		t.Errorf("pdf path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading pdf: %v", err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data), "%PDF") {
		t.Error("output is not a PDF document")
	}
}

func TestWritePDFUsesSourceName(t *testing.T) {
	dir := t.TempDir()

	last := sampleScan()
	last.SourceName = "thesis_draft"

	path, err := WritePDF(last, "jane@example.com", dir, testNow)
	if err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if filepath.Base(path) != "thesis_draft_ai_highlight_report_2025-03-14.pdf" {
		t.Errorf("pdf path = %q", path)
	}
}

func TestServerHealthCheck(t *testing.T) {
	router := NewRouter(t.TempDir())

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestServerListsReports(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "report_jane_2025-03-14.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatal(err)
	}

	router := NewRouter(dir)

	req := httptest.NewRequest("GET", "/api/reports", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var reports []reportInfo
	if err := json.Unmarshal(w.Body.Bytes(), &reports); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	if reports[0].Name != "report_jane_2025-03-14.html" || reports[0].Format != "html" {
		t.Errorf("unexpected listing: %+v", reports[0])
	}

	// The artifact itself is served statically.
	req = httptest.NewRequest("GET", "/report_jane_2025-03-14.html", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("static file: expected 200, got %d", w.Code)
	}
}
