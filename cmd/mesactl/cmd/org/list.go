package org

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := ownerClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		orgs, err := mesaClient.ListOrganizations(ctx)
		if err != nil {
			return fmt.Errorf("failed to list organizations: %w", err)
		}

		active := ""
		if sess := mesaClient.Session(); sess.User != nil {
			active = sess.User.Organization.ID
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSERIAL\tNAME\tSTATUS\tACTIVE")
		for _, o := range orgs {
			mark := ""
			if o.ID == active {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.ID, o.SerialNumber, o.Name, o.Status, mark)
		}
		w.Flush()
		return nil
	},
}
