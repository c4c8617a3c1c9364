package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/requinsolutions/aidetect/internal/api"
	"github.com/requinsolutions/aidetect/internal/history"
	"github.com/requinsolutions/aidetect/internal/session"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your past scans, newest first",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	client := newClient(cfg, sess)
	entries, err := client.MyHistory(context.Background())
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			return requestError(err, store)
		}
		// Any other failure renders the placeholder rather than aborting.
		entries = nil
	}

	history.Render(os.Stdout, entries, cfg.HistoryLimit, history.PagePreview)
	return nil
}
