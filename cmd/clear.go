package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/requinsolutions/aidetect/internal/scan"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the cached analysis result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := scan.DefaultStore()
		if err != nil {
			return err
		}
		if err := cache.Clear(); err != nil {
			return err
		}
		fmt.Println("Cached result cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
