package auth

import (
	"context"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var passwdIn sdk.ChangePasswordInput

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change your own password",
	RunE: func(cmd *cobra.Command, args []string) error {
		mesaClient, err := sdkClient(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := mesaClient.ChangePassword(ctx, passwdIn); err != nil {
			return err
		}
		pterm.Success.Println("Password changed")
		return nil
	},
}

func init() {
	passwdCmd.Flags().StringVar(&passwdIn.CurrentPassword, "current", "", "Current password")
	passwdCmd.Flags().StringVar(&passwdIn.NewPassword, "new", "", "New password (min 6 characters)")
	passwdCmd.Flags().StringVar(&passwdIn.ConfirmPassword, "confirm", "", "New password confirmation")
	_ = passwdCmd.MarkFlagRequired("current")
	_ = passwdCmd.MarkFlagRequired("new")
	_ = passwdCmd.MarkFlagRequired("confirm")
}
