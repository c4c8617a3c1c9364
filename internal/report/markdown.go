package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/requinsolutions/aidetect/internal/scan"
)

// esc escapes server-sourced text before it is embedded in markdown that is
// later rendered with raw HTML enabled. Nothing from the backend is trusted
// as pre-sanitized.
func esc(s string) string {
	return template.HTMLEscapeString(s)
}

// BuildMarkdown renders the cached scan as the intermediate markdown report.
// Highlighted sentences and the donut indicator are inline HTML; everything
// else is plain markdown so the document is readable as-is.
func BuildMarkdown(last *scan.LastScan, userEmail string, now time.Time) string {
	p := &last.Prediction
	ai := p.OverallAIProbability
	human := p.OverallHumanProbability
	aiDeg := scan.ArcDegrees(ai)

	var b strings.Builder

	fmt.Fprintf(&b, "# %s Report\n\n", brandTitle)
	fmt.Fprintf(&b, "**Generated for:** %s  \n", esc(userEmail))
	fmt.Fprintf(&b, "**Generated at:** %s  \n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Report ID:** %s  \n", ReportID(now))
	if last.SourceName != "" {
		fmt.Fprintf(&b, "**Source:** %s  \n", esc(last.SourceName))
	}
	b.WriteString("\n")

	// Donut indicator. The two arcs are clamped independently; they are not
	// normalized to sum to 100.
	fmt.Fprintf(&b,
		"<div class=\"donut\" style=\"background: conic-gradient(#ef4444 0deg %.1fdeg, #10b981 %.1fdeg 360deg)\">"+
			"<div class=\"donut-inner\"><strong>AI %s%%</strong><span>Human %s%%</span></div></div>\n\n",
		aiDeg, aiDeg, scan.FormatPercent(scan.ClampPercent(ai)), scan.FormatPercent(scan.ClampPercent(human)))

	fmt.Fprintf(&b, "<span class=\"pill human-pill\">Human: %s%%</span> <span class=\"pill ai-pill\">AI: %s%%</span>\n\n",
		scan.FormatPercent(human), scan.FormatPercent(ai))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Final Verdict:** %s\n", scan.Verdict(ai, human))
	fmt.Fprintf(&b, "- **Confidence Gap:** %s%%\n", scan.GapString(ai, human))
	fmt.Fprintf(&b, "- **Risk Tier:** %s\n", scan.RiskTier(ai))
	fmt.Fprintf(&b, "- **Sentences Reviewed:** %d\n\n", len(p.Sentences))

	b.WriteString("## Highlighted Result\n\n")
	b.WriteString("<div class=\"box\">")
	if len(p.Sentences) == 0 {
		b.WriteString("(No highlighted output available)")
	}
	for _, s := range p.Sentences {
		fmt.Fprintf(&b, "<span class=\"%s\">%s</span> ", scan.LabelClass(s.FinalLabel), esc(s.Sentence))
	}
	b.WriteString("</div>\n\n")

	b.WriteString("## Source Text\n\n")
	source := last.SourceText
	if strings.TrimSpace(source) == "" {
		source = "(No source text available)"
	}
	fence := fenceFor(source)
	fmt.Fprintf(&b, "%stext\n%s\n%s\n", fence, source, fence)

	return b.String()
}

// fenceFor returns a backtick fence longer than any backtick run inside s,
// so arbitrary source text cannot terminate the block early.
func fenceFor(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	n := longest + 1
	if n < 3 {
		n = 3
	}
	return strings.Repeat("`", n)
}
