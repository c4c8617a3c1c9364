package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/requinsolutions/aidetect/internal/api"
	"github.com/requinsolutions/aidetect/internal/history"
	"github.com/requinsolutions/aidetect/internal/progress"
	"github.com/requinsolutions/aidetect/internal/scan"
	"github.com/requinsolutions/aidetect/internal/session"
)

var scanFileGlob string

var scanCmd = &cobra.Command{
	Use:   "scan [text]",
	Short: "Analyze text for AI-generated writing",
	Long: `Sends text to the detection backend and prints the verdict, the
confidence gap, and a per-sentence breakdown.

Text comes from the argument, from stdin when the argument is "-", or
from files matched by --file (glob patterns like "essays/**/*.docx"
are supported). Matched files are uploaded for text extraction before
analysis.

The most recent result is cached for `+"`aidetect report`"+`.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFileGlob, "file", "", "glob of files to extract and analyze")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := session.DefaultStore()
	if err != nil {
		return err
	}
	sess, err := store.Require()
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Backend: %s (timeout %ds)\n", cfg.APIBase, cfg.TimeoutSeconds)
	}
	client := newClient(cfg, sess)
	ctx := context.Background()

	var last *scan.LastScan
	if scanFileGlob != "" {
		last, err = scanFiles(ctx, client, store, scanFileGlob)
	} else {
		last, err = scanText(ctx, client, store, args)
	}
	if err != nil {
		return err
	}

	cache, err := scan.DefaultStore()
	if err != nil {
		return err
	}
	if err := cache.Save(last); err != nil {
		return err
	}

	fmt.Printf("Tokens left: %d\n", last.Prediction.TokensLeft)
	fmt.Println("\nRecent scans:")
	entries, err := client.MyHistory(ctx)
	if err != nil {
		entries = nil
	}
	history.Render(os.Stdout, entries, history.RecentLimit, history.RecentPreview)

	fmt.Println("\nRun `aidetect report` to export this result.")
	return nil
}

// scanText analyzes a single text taken from the argument or stdin.
func scanText(ctx context.Context, client *api.Client, store *session.Store, args []string) (*scan.LastScan, error) {
	var text string
	switch {
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	case len(args) == 1:
		text = args[0]
	default:
		return nil, fmt.Errorf("nothing to scan: pass text, \"-\" for stdin, or --file <glob>")
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("nothing to scan: the input text is empty")
	}

	loader := progress.StartLoader("Reading sentence patterns...")
	pred, err := client.Predict(ctx, text)
	loader.Stop()
	if err != nil {
		return nil, requestError(err, store)
	}

	scan.Render(os.Stdout, pred)
	return &scan.LastScan{Prediction: *pred, SourceText: text}, nil
}

// scanFiles extracts and analyzes every file matched by the glob. The cached
// result is the last file's analysis.
func scanFiles(ctx context.Context, client *api.Client, store *session.Store, pattern string) (*scan.LastScan, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}

	reporter := progress.NewReporter()
	reporter.Start(len(matches))

	var last *scan.LastScan
	for i, path := range matches {
		reporter.Update(i+1, filepath.Base(path))

		f, err := os.Open(path)
		if err != nil {
			reporter.Finish()
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		extracted, err := client.ExtractFile(ctx, filepath.Base(path), f)
		f.Close()
		if err != nil {
			reporter.Finish()
			return nil, requestError(err, store)
		}
		if strings.TrimSpace(extracted.Text) == "" {
			reporter.Finish()
			return nil, fmt.Errorf("no text could be extracted from %s", path)
		}

		pred, err := client.Predict(ctx, extracted.Text)
		if err != nil {
			reporter.Finish()
			return nil, requestError(err, store)
		}

		name := extracted.Filename
		if name == "" {
			name = filepath.Base(path)
		}
		last = &scan.LastScan{
			Prediction: *pred,
			SourceText: extracted.Text,
			SourceName: scan.FileBaseName(name),
		}

		fmt.Printf("\n== %s ==\n", filepath.Base(path))
		scan.Render(os.Stdout, pred)
	}
	reporter.Finish()

	return last, nil
}
