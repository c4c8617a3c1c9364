package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/requinsolutions/aidetect/internal/api"
	"github.com/requinsolutions/aidetect/internal/config"
	"github.com/requinsolutions/aidetect/internal/history"
	"github.com/requinsolutions/aidetect/internal/session"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage accounts, tokens, and quotas",
	Long: `Account management for admin and super_admin roles.

Admins create user accounts within their per-admin quota and recharge
scan tokens. Super admins additionally create admin accounts, set
quotas, and manage every account.`,
}

var (
	createUserTokens    int
	createAdminTokens   int
	createAdminMaxUsers int
	rechargeTokens      int
	quotaMaxUsers       int
	deleteYes           bool
)

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the accounts visible to you",
	RunE:  runAdminUsers,
}

var adminCreateUserCmd = &cobra.Command{
	Use:   "create-user <email>",
	Short: "Create a user account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminCreateUser,
}

var adminCreateAdminCmd = &cobra.Command{
	Use:   "create-admin <email>",
	Short: "Create an admin account (super_admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminCreateAdmin,
}

var adminRechargeCmd = &cobra.Command{
	Use:   "recharge <user-id>",
	Short: "Set a user's scan token balance",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminRecharge,
}

var adminSetQuotaCmd = &cobra.Command{
	Use:   "set-quota <user-id>",
	Short: "Set an admin's user-creation quota (super_admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminSetQuota,
}

var adminDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete an account and its scan logs",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminDelete,
}

var adminLogsCmd = &cobra.Command{
	Use:   "logs <user-id>",
	Short: "Show a user's scan history",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminLogs,
}

var adminSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show your user-creation quota and usage",
	RunE:  runAdminSummary,
}

func init() {
	adminCreateUserCmd.Flags().IntVar(&createUserTokens, "tokens", 10, "initial scan token balance")
	adminCreateAdminCmd.Flags().IntVar(&createAdminTokens, "tokens", 10, "initial scan token balance")
	adminCreateAdminCmd.Flags().IntVar(&createAdminMaxUsers, "max-users", 10, "how many users the new admin may create")
	adminRechargeCmd.Flags().IntVar(&rechargeTokens, "tokens", 0, "new token balance")
	_ = adminRechargeCmd.MarkFlagRequired("tokens")
	adminSetQuotaCmd.Flags().IntVar(&quotaMaxUsers, "max-users", 0, "new user-creation quota")
	_ = adminSetQuotaCmd.MarkFlagRequired("max-users")
	adminDeleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")

	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminCreateUserCmd)
	adminCmd.AddCommand(adminCreateAdminCmd)
	adminCmd.AddCommand(adminRechargeCmd)
	adminCmd.AddCommand(adminSetQuotaCmd)
	adminCmd.AddCommand(adminDeleteCmd)
	adminCmd.AddCommand(adminLogsCmd)
	adminCmd.AddCommand(adminSummaryCmd)
	rootCmd.AddCommand(adminCmd)
}

// adminSetup loads config and enforces the role gate before any request is
// sent. A valid session with an insufficient role fails here.
func adminSetup(roles ...string) (*config.Config, *session.Store, *api.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := session.DefaultStore()
	if err != nil {
		return nil, nil, nil, err
	}
	sess, err := store.RequireRole(roles...)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, store, newClient(cfg, sess), nil
}

func runAdminUsers(cmd *cobra.Command, args []string) error {
	_, store, client, err := adminSetup(session.RoleAdmin, session.RoleSuperAdmin)
	if err != nil {
		return err
	}

	rows, err := client.ListUsers(context.Background())
	if err != nil {
		return requestError(err, store)
	}
	if len(rows) == 0 {
		fmt.Println("No accounts found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tROLE\tTOKENS\tMAX USERS")
	for _, row := range rows {
		quota := "-"
		if row.MaxUsersAllowed != nil {
			quota = strconv.Itoa(*row.MaxUsersAllowed)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", row.ID, row.Email, row.Role, row.Tokens, quota)
	}
	return w.Flush()
}

// promptPassword asks for the new account's password, twice.
func promptPassword() (string, error) {
	pw := promptui.Prompt{
		Label: "Password for the new account",
		Mask:  '*',
		Validate: func(s string) error {
			if len(s) < 6 {
				return fmt.Errorf("password must be at least 6 characters")
			}
			return nil
		},
	}
	password, err := pw.Run()
	if err != nil {
		return "", fmt.Errorf("password: %w", err)
	}

	confirm := promptui.Prompt{Label: "Confirm password", Mask: '*'}
	again, err := confirm.Run()
	if err != nil {
		return "", fmt.Errorf("password: %w", err)
	}
	if password != again {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}

func runAdminCreateUser(cmd *cobra.Command, args []string) error {
	_, store, client, err := adminSetup(session.RoleAdmin, session.RoleSuperAdmin)
	if err != nil {
		return err
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	resp, err := client.CreateUser(context.Background(), api.CreateUserRequest{
		Email:    args[0],
		Password: password,
		Tokens:   createUserTokens,
	})
	if err != nil {
		return requestError(err, store)
	}
	fmt.Printf("Created user %s with %d tokens.\n", args[0], resp.Tokens)
	return nil
}

func runAdminCreateAdmin(cmd *cobra.Command, args []string) error {
	_, store, client, err := adminSetup(session.RoleSuperAdmin)
	if err != nil {
		return err
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	_, err = client.CreateUser(context.Background(), api.CreateUserRequest{
		Email:           args[0],
		Password:        password,
		Tokens:          createAdminTokens,
		Role:            session.RoleAdmin,
		MaxUsersAllowed: createAdminMaxUsers,
	})
	if err != nil {
		return requestError(err, store)
	}
	fmt.Printf("Created admin %s (may create up to %d users).\n", args[0], createAdminMaxUsers)
	return nil
}

func runAdminRecharge(cmd *cobra.Command, args []string) error {
	_, store, client, err := adminSetup(session.RoleAdmin, session.RoleSuperAdmin)
	if err != nil {
		return err
	}

	if err := client.UpdateTokens(context.Background(), args[0], rechargeTokens); err != nil {
		return requestError(err, store)
	}
	fmt.Printf("Token balance for %s set to %d.\n", args[0], rechargeTokens)
	return nil
}

func runAdminSetQuota(cmd *cobra.Command, args []string) error {
	_, store, client, err := adminSetup(session.RoleSuperAdmin)
	if err != nil {
		return err
	}

	if err := client.UpdateMaxUsers(context.Background(), args[0], quotaMaxUsers); err != nil {
		return requestError(err, store)
	}
	fmt.Printf("User-creation quota for %s set to %d.\n", args[0], quotaMaxUsers)
	return nil
}

func runAdminDelete(cmd *cobra.Command, args []string) error {
	_, store, client, err := adminSetup(session.RoleAdmin, session.RoleSuperAdmin)
	if err != nil {
		return err
	}

	if !deleteYes {
		confirm := promptui.Prompt{
			Label:     fmt.Sprintf("Delete account %s and all its scan logs", args[0]),
			IsConfirm: true,
		}
		if _, err := confirm.Run(); err != nil {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := client.DeleteUser(context.Background(), args[0]); err != nil {
		return requestError(err, store)
	}
	fmt.Printf("Deleted account %s.\n", args[0])
	return nil
}

func runAdminLogs(cmd *cobra.Command, args []string) error {
	_, store, client, err := adminSetup(session.RoleAdmin, session.RoleSuperAdmin)
	if err != nil {
		return err
	}

	entries, err := client.UserLogs(context.Background(), args[0])
	if err != nil {
		return requestError(err, store)
	}
	history.Render(os.Stdout, entries, 0, history.LogsPreview)
	return nil
}

func runAdminSummary(cmd *cobra.Command, args []string) error {
	_, store, client, err := adminSetup(session.RoleAdmin, session.RoleSuperAdmin)
	if err != nil {
		return err
	}

	resp, err := client.MeSummary(context.Background())
	if err != nil {
		return requestError(err, store)
	}
	fmt.Printf("Account       : %s (%s)\n", resp.Email, resp.Role)
	fmt.Printf("Users created : %d of %d allowed\n", resp.UsersCreated, resp.MaxUsersAllowed)
	return nil
}
