package orders

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var (
	createTable    int
	createNotes    string
	createItemArgs []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Place a new order",
	Long: `Places an order for one table. Items are passed as repeated --item flags in
the form <menu-item-id>:<quantity>. Prices and the order total are computed
server-side from the menu.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		items, err := parseItemArgs(createItemArgs)
		if err != nil {
			return err
		}

		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		order, err := mesaClient.CreateOrder(ctx, sdk.CreateOrderInput{
			TableNumber: createTable,
			Items:       items,
			Notes:       createNotes,
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		pterm.Success.Printf("Created order %s (total %s)\n", order.ID, order.TotalAmount.StringFixed(2))
		return nil
	},
}

// parseItemArgs turns repeated id:qty flags into order lines. A bare id
// defaults to quantity 1.
func parseItemArgs(raw []string) ([]sdk.OrderItem, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("at least one --item is required")
	}
	items := make([]sdk.OrderItem, 0, len(raw))
	for _, arg := range raw {
		id, qtyStr, found := strings.Cut(arg, ":")
		if id == "" {
			return nil, fmt.Errorf("invalid --item %q (want <menu-item-id>:<quantity>)", arg)
		}
		qty := 1
		if found {
			n, err := strconv.Atoi(qtyStr)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid quantity in --item %q", arg)
			}
			qty = n
		}
		items = append(items, sdk.OrderItem{MenuItemID: id, Quantity: qty})
	}
	return items, nil
}

func init() {
	createCmd.Flags().IntVar(&createTable, "table", 0, "Table number")
	createCmd.Flags().StringVar(&createNotes, "notes", "", "Kitchen notes")
	createCmd.Flags().StringArrayVar(&createItemArgs, "item", nil, "Order line as <menu-item-id>:<quantity>. Repeatable")
}
