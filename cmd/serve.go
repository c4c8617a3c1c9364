package cmd

import (
	"github.com/spf13/cobra"

	"github.com/requinsolutions/aidetect/internal/report"
)

var (
	servePort int
	serveOpen bool
	serveDir  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve exported reports over local HTTP",
	Long: `Starts a local HTTP server for the reports directory so exported
documents can be viewed in a browser. /api/reports lists the available
artifacts as JSON.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8077, "port to listen on")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the browser after starting")
	serveCmd.Flags().StringVar(&serveDir, "dir", "", "directory to serve (default: configured reports_dir)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	dir := serveDir
	if dir == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir = cfg.ReportsDir
	}
	return report.Serve(dir, servePort, serveOpen)
}
