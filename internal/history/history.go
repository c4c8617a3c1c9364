package history

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/requinsolutions/aidetect/internal/api"
	"github.com/requinsolutions/aidetect/internal/scan"
)

// Preview caps per view, in runes.
const (
	RecentLimit   = 3
	RecentPreview = 300
	PagePreview   = 800
	LogsPreview   = 1000
)

// timestampLayouts covers RFC 3339 and the backend's zone-less isoformat.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses an entry timestamp. Missing or unparseable values
// yield the zero time, which sorts last in the descending ordering.
func ParseTimestamp(ts string) time.Time {
	if ts == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Sort orders entries newest first, in place. The sort is stable so entries
// with equal (or equally missing) timestamps keep their server order.
func Sort(entries []api.HistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return ParseTimestamp(entries[i].Timestamp).After(ParseTimestamp(entries[j].Timestamp))
	})
}

// Truncate caps s at max runes, reporting whether anything was cut. Strings
// at or under the cap come back unmodified.
func Truncate(s string, max int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= max {
		return s, false
	}
	return string(runes[:max]), true
}

// Preview renders a capped text preview, with the ellipsis suffix only when
// truncation actually occurred.
func Preview(s string, max int) string {
	out, truncated := Truncate(s, max)
	if truncated {
		return out + "..."
	}
	return out
}

// FormatTime renders an entry timestamp for display, "N/A" when absent.
func FormatTime(ts string) string {
	t := ParseTimestamp(ts)
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// Render writes entries to w, newest first, at most limit entries (<=0 means
// all), previews capped at previewCap runes. A nil slice means the fetch
// failed or the response was not a list; that renders as a placeholder, not
// an error.
func Render(w io.Writer, entries []api.HistoryEntry, limit, previewCap int) {
	if entries == nil {
		fmt.Fprintln(w, "Unable to load history.")
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No scans yet.")
		return
	}

	Sort(entries)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	for _, e := range entries {
		result := e.Result
		if result == "" {
			result = "N/A"
		}
		fmt.Fprintf(w, "Result: %s | AI: %s%% | Human: %s%% | Time: %s\n",
			result, scan.FormatPercent(e.AIPercent), scan.FormatPercent(e.HumanPercent), FormatTime(e.Timestamp))
		fmt.Fprintf(w, "  %s\n", Preview(e.ScannedText, previewCap))
	}
}
