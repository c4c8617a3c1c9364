package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/requinsolutions/aidetect/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.DefaultStore()
		if err != nil {
			return err
		}
		sess, err := store.Load()
		if err != nil {
			return err
		}
		if sess == nil {
			fmt.Println("Not logged in. Run `aidetect login` to sign in.")
			return nil
		}
		fmt.Printf("Email   : %s\n", sess.User.Email)
		fmt.Printf("Role    : %s\n", sess.User.Role)
		fmt.Printf("Session : %s\n", store.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
