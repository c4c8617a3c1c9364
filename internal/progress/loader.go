package progress

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// loadingMessages rotate under the spinner while an analysis request is in
// flight.
var loadingMessages = []string{
	"Reading sentence patterns...",
	"Comparing AI and human writing signals...",
	"Scoring confidence across segments...",
	"Preparing your result report...",
}

// Loader is an indeterminate spinner with rotating status messages, shown
// while a single request is in flight.
type Loader struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
}

// StartLoader begins the spinner with the given initial message. In CI it
// prints the message once instead of animating.
func StartLoader(initial string) *Loader {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		os.Stderr.WriteString(initial + "\n")
		return &Loader{}
	}

	l := &Loader{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetDescription(initial),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
		),
		done: make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(1500 * time.Millisecond)
		defer ticker.Stop()
		idx := 0
		for {
			select {
			case <-l.done:
				return
			case <-ticker.C:
				l.bar.Describe(loadingMessages[idx%len(loadingMessages)])
				idx++
				_ = l.bar.Add(1)
			}
		}
	}()

	return l
}

// Stop ends the spinner and clears it from the terminal.
func (l *Loader) Stop() {
	if l.done != nil {
		close(l.done)
		l.done = nil
	}
	if l.bar != nil {
		_ = l.bar.Finish()
	}
}
