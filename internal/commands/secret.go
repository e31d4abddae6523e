package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webmend/webmend/internal/secrets"
	"github.com/webmend/webmend/internal/terminal"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage stored credentials",
	Long:  "Store credentials like npm registry tokens in the OS keychain (with a file fallback). `webmend check --build` passes the npm token to the build as NPM_TOKEN.",
}

var secretSetCmd = &cobra.Command{
	Use:   "set-npm-token <token>",
	Short: "Store the npm registry token for this project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService()
		if err != nil {
			return err
		}

		key := secrets.SecretKey("npm", svc.Config().PackageName(), "token")
		if err := svc.Secrets().Set(key, args[0]); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}
		terminal.Success("npm token stored.")
		return nil
	},
}

var secretDeleteCmd = &cobra.Command{
	Use:   "delete-npm-token",
	Short: "Delete the stored npm registry token",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService()
		if err != nil {
			return err
		}

		key := secrets.SecretKey("npm", svc.Config().PackageName(), "token")
		if err := svc.Secrets().Delete(key); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		terminal.Success("npm token deleted.")
		return nil
	},
}

var secretStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which credentials are stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService()
		if err != nil {
			return err
		}

		key := secrets.SecretKey("npm", svc.Config().PackageName(), "token")
		_, err = svc.Secrets().Get(key)
		switch {
		case err == nil:
			terminal.Success("npm token: stored")
		case errors.Is(err, secrets.ErrNotFound):
			terminal.Info("npm token: not set")
		default:
			return err
		}
		return nil
	},
}

func init() {
	secretCmd.AddCommand(secretSetCmd)
	secretCmd.AddCommand(secretDeleteCmd)
	secretCmd.AddCommand(secretStatusCmd)
}
