package scan

import (
	"strconv"
	"strings"

	"github.com/requinsolutions/aidetect/internal/api"
)

// Verdict labels for a document.
const (
	VerdictAI    = "Likely AI-Generated"
	VerdictHuman = "Likely Human-Written"
)

// Risk tiers derived from the AI probability.
const (
	RiskHigh   = "High Risk"
	RiskMedium = "Medium Risk"
	RiskLow    = "Low Risk"
)

// ClampPercent bounds a probability to [0,100]. AI and human percentages are
// clamped independently; the backend does not guarantee they sum to 100 and
// they are never normalized as a pair.
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ArcDegrees converts an AI percentage into the arc sweep of the donut
// indicator: clamp(ai)/100*360.
func ArcDegrees(aiPercent float64) float64 {
	return ClampPercent(aiPercent) / 100 * 360
}

// Verdict classifies a document from its two scores. Strict inequality: a
// tie resolves to human.
func Verdict(aiPercent, humanPercent float64) string {
	if aiPercent > humanPercent {
		return VerdictAI
	}
	return VerdictHuman
}

// ConfidenceGap is the absolute difference between the two scores.
func ConfidenceGap(aiPercent, humanPercent float64) float64 {
	gap := humanPercent - aiPercent
	if gap < 0 {
		gap = -gap
	}
	return gap
}

// GapString renders the confidence gap to exactly one decimal place.
func GapString(aiPercent, humanPercent float64) string {
	return strconv.FormatFloat(ConfidenceGap(aiPercent, humanPercent), 'f', 1, 64)
}

// RiskTier maps the AI probability onto a coarse risk label.
func RiskTier(aiPercent float64) string {
	switch {
	case aiPercent >= 80:
		return RiskHigh
	case aiPercent >= 50:
		return RiskMedium
	default:
		return RiskLow
	}
}

// IsAI reports whether a sentence label marks AI-generated text. Any label
// other than "ai" (case-insensitive), including an empty one, counts as human.
func IsAI(finalLabel string) bool {
	return strings.EqualFold(finalLabel, "ai")
}

// LabelClass lower-cases a sentence label for use as a CSS class, defaulting
// to human.
func LabelClass(finalLabel string) string {
	if IsAI(finalLabel) {
		return "ai"
	}
	return "human"
}

// FormatPercent renders a probability without trailing zeros (70 -> "70",
// 69.5 -> "69.5").
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AISentences returns the trimmed, non-empty AI-flagged sentences, capped at
// max (<=0 means no cap).
func AISentences(p *api.Prediction, max int) []string {
	var out []string
	for _, s := range p.Sentences {
		text := strings.TrimSpace(s.Sentence)
		if text == "" || !IsAI(s.FinalLabel) {
			continue
		}
		out = append(out, text)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

// UserSlug sanitizes an email for use in filenames: every non-alphanumeric
// rune becomes an underscore, lower-cased. Empty emails fall back to "user".
func UserSlug(email string) string {
	if email == "" {
		email = "user"
	}
	var b strings.Builder
	for _, r := range email {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// FileBaseName sanitizes an uploaded filename for use in report names: the
// extension is dropped, disallowed runes become underscores, runs of
// underscores collapse, lower-cased. Returns "" for empty names.
func FileBaseName(filename string) string {
	name := strings.TrimSpace(filename)
	if name == "" {
		return ""
	}
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	var b strings.Builder
	lastUnderscore := false
	for _, r := range name {
		var out rune
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			out = r
		case r >= 'A' && r <= 'Z':
			out = r + ('a' - 'A')
		case r == '_':
			out = '_'
		default:
			out = '_'
		}
		if out == '_' {
			if lastUnderscore {
				continue
			}
			lastUnderscore = true
		} else {
			lastUnderscore = false
		}
		b.WriteRune(out)
	}
	return b.String()
}
