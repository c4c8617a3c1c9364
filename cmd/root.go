package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "aidetect",
	Short: "Client for the Requin Solutions AI text detection service",
	Long: `aidetect analyzes text against the hosted Requin Solutions detection
backend and reports, sentence by sentence, how likely each passage is
to be AI-generated. Results can be exported as styled HTML, markdown,
or paginated PDF reports, and admins can manage accounts and quotas.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".aidetect.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
