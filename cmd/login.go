package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/requinsolutions/aidetect/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the detection backend",
	Long: `Prompts for your account email and password, exchanges them for a
session token, and stores the session in ~/.aidetect/session.json.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Empty credentials are rejected before any request goes out.
	emailPrompt := promptui.Prompt{
		Label: "Email",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("email is required")
			}
			return nil
		},
	}
	email, err := emailPrompt.Run()
	if err != nil {
		return fmt.Errorf("email: %w", err)
	}
	email = strings.TrimSpace(email)

	passwordPrompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("password is required")
			}
			return nil
		},
	}
	password, err := passwordPrompt.Run()
	if err != nil {
		return fmt.Errorf("password: %w", err)
	}

	client := newClient(cfg, nil)
	resp, err := client.Login(context.Background(), email, password)
	if err != nil {
		return requestError(err, nil)
	}

	store, err := session.DefaultStore()
	if err != nil {
		return err
	}
	if err := store.Save(&session.Session{AccessToken: resp.AccessToken, User: resp.User}); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("Logged in as %s (%s)\n", resp.User.Email, resp.User.Role)
	if resp.User.Role == session.RoleAdmin || resp.User.Role == session.RoleSuperAdmin {
		fmt.Println("Admin commands are available under `aidetect admin`.")
	}
	return nil
}
