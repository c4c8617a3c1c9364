package report

import (
	"fmt"
	"time"

	"github.com/requinsolutions/aidetect/internal/scan"
)

// Brand strings printed on every exported artifact.
const (
	brandTitle    = "AI Text Detector"
	brandSubtitle = "by Requin Solutions"
	watermarkText = "REQUIN SOLUTIONS"
)

// HTMLFileName builds the HTML report filename: report_<user-slug>_<date>.html.
func HTMLFileName(userEmail string, now time.Time) string {
	return fmt.Sprintf("report_%s_%s.html", scan.UserSlug(userEmail), now.Format("2006-01-02"))
}

// MarkdownFileName mirrors HTMLFileName for the markdown variant.
func MarkdownFileName(userEmail string, now time.Time) string {
	return fmt.Sprintf("report_%s_%s.md", scan.UserSlug(userEmail), now.Format("2006-01-02"))
}

// PDFFileName builds the PDF report filename from the sanitized source name
// (uploaded file base or user slug): <base>_ai_highlight_report_<date>.pdf.
func PDFFileName(sourceName, userEmail string, now time.Time) string {
	base := sourceName
	if base == "" {
		base = scan.UserSlug(userEmail)
	}
	return fmt.Sprintf("%s_ai_highlight_report_%s.pdf", base, now.Format("2006-01-02"))
}

// ReportID derives the report identifier from the generation time:
// RQ-<YYYYMMDD>-<HHMMSS>.
func ReportID(now time.Time) string {
	return fmt.Sprintf("RQ-%s-%s", now.Format("20060102"), now.Format("150405"))
}
