package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/requinsolutions/aidetect/internal/scan"
)

// Page geometry in points, A4 portrait.
const (
	pdfMargin     = 24.0
	headerHeight  = 56.0
	rowGap        = 8.0
	rowPaddingY   = 8.0
	rowPaddingX   = 10.0
	rowLineHeight = 16.0
	rowFontSize   = 11.0
)

// Row and card palette.
var (
	colorInk       = [3]int{15, 23, 42}
	colorMuted     = [3]int{71, 85, 105}
	colorRuleLine  = [3]int{226, 232, 240}
	colorWatermark = [3]int{207, 218, 237}
	colorAICard    = [3]int{220, 38, 38}
	colorHumanCard = [3]int{5, 150, 105}
	colorAIRowBG   = [3]int{255, 237, 237}
	colorAIRowBar  = [3]int{220, 38, 38}
	colorAIRowText = [3]int{111, 24, 24}
	colorHuRowBG   = [3]int{220, 252, 231}
	colorHuRowBar  = [3]int{16, 185, 129}
	colorHuRowText = [3]int{20, 83, 45}
	colorPanel     = [3]int{241, 245, 249}
	colorPanelSoft = [3]int{248, 250, 252}
)

// riskColor maps a risk tier onto its badge color.
func riskColor(tier string) [3]int {
	switch tier {
	case scan.RiskHigh:
		return [3]int{220, 38, 38}
	case scan.RiskMedium:
		return [3]int{217, 119, 6}
	default:
		return [3]int{5, 150, 105}
	}
}

// pdfWriter tracks the running vertical offset across paginated pages.
type pdfWriter struct {
	f     *fpdf.Fpdf
	tr    func(string) string
	pageW float64
	pageH float64
	y     float64
}

func (p *pdfWriter) contentWidth() float64  { return p.pageW - 2*pdfMargin }
func (p *pdfWriter) contentBottom() float64 { return p.pageH - pdfMargin }

func (p *pdfWriter) setFill(c [3]int) { p.f.SetFillColor(c[0], c[1], c[2]) }
func (p *pdfWriter) setText(c [3]int) { p.f.SetTextColor(c[0], c[1], c[2]) }

// text draws s at the baseline (x, y) after code-page translation.
func (p *pdfWriter) text(x, y float64, s string) {
	p.f.Text(x, y, p.tr(s))
}

// textCentered draws s centered on x.
func (p *pdfWriter) textCentered(x, y float64, s string) {
	t := p.tr(s)
	p.f.Text(x-p.f.GetStringWidth(t)/2, y, t)
}

// textRight draws s right-aligned at x.
func (p *pdfWriter) textRight(x, y float64, s string) {
	t := p.tr(s)
	p.f.Text(x-p.f.GetStringWidth(t), y, t)
}

// header draws the brand header repeated on every page.
func (p *pdfWriter) header() {
	p.setText(colorInk)
	p.f.SetFont("Helvetica", "B", 14)
	p.text(pdfMargin, 28, brandTitle)
	p.f.SetFont("Helvetica", "", 11)
	p.text(pdfMargin, 43, brandSubtitle)

	p.f.SetDrawColor(colorRuleLine[0], colorRuleLine[1], colorRuleLine[2])
	p.f.Line(pdfMargin, headerHeight+6, p.pageW-pdfMargin, headerHeight+6)
}

// watermark draws the rotated brand watermark behind the page content.
func (p *pdfWriter) watermark() {
	cx := p.pageW / 2
	cy := p.pageH/2 + 12
	p.setText(colorWatermark)
	p.f.SetFont("Helvetica", "B", 46)
	p.f.TransformBegin()
	p.f.TransformRotate(28, cx, cy)
	p.textCentered(cx, cy, watermarkText)
	p.f.TransformEnd()
	p.setText(colorInk)
}

// beginPage starts a fresh page with header and watermark and resets y.
func (p *pdfWriter) beginPage() {
	p.f.AddPage()
	p.header()
	p.watermark()
	p.y = pdfMargin + headerHeight + 18
}

// scoreCard draws one filled probability card.
func (p *pdfWriter) scoreCard(x, w float64, title, score string, fill [3]int) {
	p.setFill(fill)
	p.f.RoundedRect(x, p.y, w, 54, 12, "1234", "F")
	p.setText([3]int{255, 255, 255})
	p.f.SetFont("Helvetica", "B", 10)
	p.text(x+12, p.y+16, title)
	p.f.SetFont("Helvetica", "B", 23)
	p.text(x+12, p.y+39, score+"%")
	p.setText(colorInk)
}

// cover draws the first page: score cards, verdict with risk badge,
// document overview, AI-flagged previews, and report metadata.
func (p *pdfWriter) cover(last *scan.LastScan, sourceLabel string, now time.Time) {
	pred := &last.Prediction
	ai := pred.OverallAIProbability
	human := pred.OverallHumanProbability

	total := len(pred.Sentences)
	aiCount := 0
	for _, s := range pred.Sentences {
		if scan.IsAI(s.FinalLabel) {
			aiCount++
		}
	}
	humanCount := total - aiCount
	aiRatio, humanRatio := 0, 0
	if total > 0 {
		aiRatio = int(float64(aiCount)/float64(total)*100 + 0.5)
		humanRatio = int(float64(humanCount)/float64(total)*100 + 0.5)
	}

	tier := scan.RiskTier(ai)
	cw := p.contentWidth()

	p.beginPage()
	p.f.SetFont("Helvetica", "B", 24)
	p.text(pdfMargin, p.y+16, "AI Writing Detection Report")
	p.y += 34

	p.f.SetFont("Helvetica", "", 12)
	p.setText(colorMuted)
	p.text(pdfMargin, p.y+12, "Automated overview with clear risk indicators and summary insights.")
	p.y += 28

	p.f.SetDrawColor(colorRuleLine[0], colorRuleLine[1], colorRuleLine[2])
	p.f.Line(pdfMargin, p.y, p.pageW-pdfMargin, p.y)
	p.y += 18

	p.f.SetFont("Helvetica", "", 11)
	p.setText([3]int{51, 65, 85})
	p.text(pdfMargin, p.y, "Generated at: "+now.Format("2006-01-02 15:04:05"))
	p.textRight(p.pageW-pdfMargin, p.y, "File/User: "+sourceLabel)
	p.y += 18

	cardGap := 14.0
	cardW := (cw - cardGap) / 2
	p.scoreCard(pdfMargin, cardW, "AI Probability", scan.FormatPercent(ai), colorAICard)
	p.scoreCard(pdfMargin+cardW+cardGap, cardW, "Human Probability", scan.FormatPercent(human), colorHumanCard)
	p.y += 72

	// Verdict panel with risk badge.
	p.setFill(colorPanel)
	p.f.RoundedRect(pdfMargin, p.y, cw, 92, 12, "1234", "F")
	p.f.SetFont("Helvetica", "B", 14)
	p.text(pdfMargin+14, p.y+24, "Overall Verdict")
	rc := riskColor(tier)
	p.setFill(rc)
	p.f.RoundedRect(p.pageW-pdfMargin-110, p.y+10, 96, 20, 8, "1234", "F")
	p.setText([3]int{255, 255, 255})
	p.f.SetFont("Helvetica", "B", 10)
	p.textCentered(p.pageW-pdfMargin-62, p.y+24, tier)
	p.setText(colorInk)
	p.f.SetFont("Helvetica", "B", 20)
	p.text(pdfMargin+14, p.y+52, scan.Verdict(ai, human))
	p.f.SetFont("Helvetica", "", 12)
	p.setText(colorMuted)
	p.text(pdfMargin+14, p.y+74, "Confidence Gap: "+scan.GapString(ai, human)+"%")
	p.setText(colorInk)
	p.y += 106

	// Document overview counts.
	p.setFill(colorPanelSoft)
	p.f.RoundedRect(pdfMargin, p.y, cw, 86, 12, "1234", "F")
	p.f.SetFont("Helvetica", "B", 13)
	p.text(pdfMargin+14, p.y+22, "Document Overview")
	p.f.SetFont("Helvetica", "", 11)
	p.text(pdfMargin+14, p.y+42, fmt.Sprintf("Total Sentences: %d", total))
	p.text(pdfMargin+14, p.y+60, fmt.Sprintf("AI-Labeled Sentences: %d", aiCount))
	p.text(pdfMargin+14, p.y+78, fmt.Sprintf("Human-Labeled Sentences: %d", humanCount))
	p.text(pdfMargin+cw/2+14, p.y+42, fmt.Sprintf("AI Ratio: %d%%", aiRatio))
	p.text(pdfMargin+cw/2+14, p.y+60, fmt.Sprintf("Human Ratio: %d%%", humanRatio))
	p.y += 98

	// Up to four AI-flagged previews, first wrapped line each.
	p.setFill(colorPanelSoft)
	p.f.RoundedRect(pdfMargin, p.y, cw, 118, 12, "1234", "F")
	p.f.SetFont("Helvetica", "B", 13)
	p.text(pdfMargin+14, p.y+22, "Top AI-Flagged Highlights")
	p.f.SetFont("Helvetica", "", 10.5)
	highlights := scan.AISentences(pred, 4)
	if len(highlights) == 0 {
		highlights = []string{"No AI-flagged highlights found."}
	}
	hy := p.y + 40
	for _, h := range highlights {
		lines := p.f.SplitText(p.tr("- "+h), cw-28)
		if len(lines) > 0 {
			p.f.Text(pdfMargin+14, hy, lines[0])
		}
		hy += 18
	}
	p.y += 130

	// Report metadata.
	p.setFill(colorPanel)
	p.f.RoundedRect(pdfMargin, p.y, cw, 74, 12, "1234", "F")
	p.f.SetFont("Helvetica", "B", 12)
	p.text(pdfMargin+14, p.y+20, "Report Metadata")
	p.f.SetFont("Helvetica", "", 10.5)
	p.text(pdfMargin+14, p.y+38, "Report ID: "+ReportID(now))
	p.text(pdfMargin+14, p.y+54, "Generated: "+now.Format("2006-01-02 15:04:05"))
	p.text(pdfMargin+cw/2+14, p.y+38, "Source: "+sourceLabel)
	p.text(pdfMargin+cw/2+14, p.y+54, "Quick Notes:")
	p.text(pdfMargin+cw/2+14, p.y+68, "- Page 2 onward contains sentence-level detail.")
}

// detailIntro draws the banner and section title at the top of a detail page.
func (p *pdfWriter) detailIntro(continued bool) {
	cw := p.contentWidth()

	// Banner as a horizontal gradient strip.
	const steps = 22
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		r := int(15*(1-t) + 30*t)
		g := int(23*(1-t) + 64*t)
		b := int(42*(1-t) + 175*t)
		p.f.SetFillColor(r, g, b)
		p.f.Rect(pdfMargin+cw/steps*float64(i), p.y, cw/steps+1, 48, "F")
	}
	p.setText([3]int{248, 250, 252})
	p.f.SetFont("Helvetica", "B", 23)
	title := "Detailed AI Report"
	if continued {
		title = "Detailed Report (Continued)"
	}
	p.textCentered(p.pageW/2, p.y+31, title)
	p.y += 66

	p.f.SetDrawColor(203, 213, 225)
	p.setFill([3]int{255, 255, 255})
	p.f.RoundedRect(pdfMargin, p.y, cw, 26, 8, "1234", "FD")
	p.setText(colorInk)
	p.f.SetFont("Helvetica", "B", 14)
	p.text(pdfMargin+12, p.y+17, "Highlighted Extracted Text")
	p.y += 36
}

// beginDetailPage starts a detail page, repeating header, watermark, and banner.
func (p *pdfWriter) beginDetailPage(continued bool) {
	p.beginPage()
	p.detailIntro(continued)
}

// sentenceRows draws every sentence as a color-tinted row, starting a new
// detail page whenever the next row would cross the printable bottom.
func (p *pdfWriter) sentenceRows(last *scan.LastScan) {
	cw := p.contentWidth()
	rowTextWidth := cw - rowPaddingX*2 - 26

	type row struct {
		text string
		isAI bool
	}
	var rows []row
	for _, s := range last.Prediction.Sentences {
		rows = append(rows, row{text: s.Sentence, isAI: scan.IsAI(s.FinalLabel)})
	}
	if len(rows) == 0 {
		rows = append(rows, row{text: "(No highlighted output available)"})
	}

	p.beginDetailPage(false)
	for _, r := range rows {
		p.f.SetFont("Helvetica", "", rowFontSize)
		lines := p.f.SplitText(p.tr(r.text), rowTextWidth)
		rowHeight := float64(len(lines))*rowLineHeight + rowPaddingY*2

		if p.y+rowHeight > p.contentBottom() {
			p.beginDetailPage(true)
			p.f.SetFont("Helvetica", "", rowFontSize)
		}

		if r.isAI {
			p.setFill(colorAIRowBG)
			p.f.RoundedRect(pdfMargin, p.y, cw, rowHeight, 8, "1234", "F")
			p.setFill(colorAIRowBar)
			p.f.Rect(pdfMargin, p.y, 3, rowHeight, "F")
			p.setText(colorAIRowText)
		} else {
			p.setFill(colorHuRowBG)
			p.f.RoundedRect(pdfMargin, p.y, cw, rowHeight, 8, "1234", "F")
			p.setFill(colorHuRowBar)
			p.f.Rect(pdfMargin, p.y, 3, rowHeight, "F")
			p.setText(colorHuRowText)
		}

		textY := p.y + rowPaddingY + 10
		for _, line := range lines {
			p.f.Text(pdfMargin+rowPaddingX, textY, line)
			textY += rowLineHeight
		}
		p.setText(colorInk)
		p.y += rowHeight + rowGap
	}
}

// WritePDF exports the cached scan as the paginated PDF report under outDir
// and returns the written path.
func WritePDF(last *scan.LastScan, userEmail, outDir string, now time.Time) (string, error) {
	f := fpdf.New("P", "pt", "A4", "")
	f.SetAutoPageBreak(false, 0)

	w := &pdfWriter{
		f:  f,
		tr: f.UnicodeTranslatorFromDescriptor(""),
	}
	w.pageW, w.pageH = f.GetPageSize()

	sourceLabel := last.SourceName
	if sourceLabel == "" {
		sourceLabel = scan.UserSlug(userEmail)
	}

	w.cover(last, sourceLabel, now)
	w.sentenceRows(last)

	if err := f.Error(); err != nil {
		return "", fmt.Errorf("building PDF: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports dir: %w", err)
	}
	path := filepath.Join(outDir, PDFFileName(last.SourceName, userEmail, now))
	if err := f.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing PDF: %w", err)
	}
	return path, nil
}
