package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from Mesa",
	RunE: func(cmd *cobra.Command, args []string) error {
		mesaClient, err := sdkClient(cmd.Context())
		if err != nil {
			return err
		}
		mesaClient.Logout()
		fmt.Println("Logged out successfully")
		return nil
	},
}
