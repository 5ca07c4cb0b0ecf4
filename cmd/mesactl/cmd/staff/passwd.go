package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var passwdPassword string

var passwdCmd = &cobra.Command{
	Use:   "passwd <id>",
	Short: "Reset a staff member's password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := mesaClient.SetStaffPassword(ctx, args[0], passwdPassword); err != nil {
			return fmt.Errorf("failed to reset password: %w", err)
		}
		pterm.Success.Printf("Password reset for staff member %s\n", args[0])
		return nil
	},
}

func init() {
	passwdCmd.Flags().StringVar(&passwdPassword, "password", "", "New password (min 6 characters)")
	_ = passwdCmd.MarkFlagRequired("password")
}
