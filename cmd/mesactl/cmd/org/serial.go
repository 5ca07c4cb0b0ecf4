package org

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var serialCmd = &cobra.Command{
	Use:   "next-serial",
	Short: "Show the next free organization serial",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := ownerClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		serial, err := mesaClient.NextSerial(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch next serial: %w", err)
		}

		fmt.Println(serial)
		return nil
	},
}
