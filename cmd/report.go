package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/requinsolutions/aidetect/internal/report"
	"github.com/requinsolutions/aidetect/internal/scan"
	"github.com/requinsolutions/aidetect/internal/session"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the cached analysis as HTML, PDF, or markdown",
	Long: `Exports the most recent scan result into the configured reports
directory. The HTML report is a self-contained styled document; the PDF
is a paginated report with a cover summary and sentence-level detail
pages.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "html", "output format: html, pdf, or md")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
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

	cache, err := scan.DefaultStore()
	if err != nil {
		return err
	}
	last, err := cache.Load()
	if err != nil {
		if errors.Is(err, scan.ErrNoResult) {
			return fmt.Errorf("no analysis to export yet. Run `aidetect scan` first")
		}
		return err
	}

	now := time.Now()
	var path string
	switch reportFormat {
	case "html":
		path, err = report.WriteHTML(last, sess.User.Email, cfg.ReportsDir, now)
	case "pdf":
		path, err = report.WritePDF(last, sess.User.Email, cfg.ReportsDir, now)
	case "md":
		path, err = report.WriteMarkdown(last, sess.User.Email, cfg.ReportsDir, now)
	default:
		return fmt.Errorf("unknown format %q (valid: html, pdf, md)", reportFormat)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", path)
	return nil
}
