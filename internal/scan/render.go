package scan

import (
	"fmt"
	"io"
	"strings"

	"github.com/requinsolutions/aidetect/internal/api"
)

// Render writes the analysis summary and per-sentence labels to w.
func Render(w io.Writer, p *api.Prediction) {
	ai := p.OverallAIProbability
	human := p.OverallHumanProbability

	fmt.Fprintf(w, "Final Verdict   : %s\n", Verdict(ai, human))
	fmt.Fprintf(w, "Confidence Gap  : %s%%\n", GapString(ai, human))
	fmt.Fprintf(w, "AI Probability  : %s%%  |  Human Probability: %s%%\n",
		FormatPercent(ai), FormatPercent(human))
	fmt.Fprintf(w, "Sentences       : %d reviewed\n", len(p.Sentences))
	fmt.Fprintln(w)
	fmt.Fprint(w, ResultText(p))
}

// ResultText renders the numbered sentence listing, one "[LABEL] sentence"
// line per sentence. This is also the copy-to-clipboard text shape.
func ResultText(p *api.Prediction) string {
	var b strings.Builder
	for i, s := range p.Sentences {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, strings.ToUpper(LabelClass(s.FinalLabel)), s.Sentence)
	}
	return b.String()
}
