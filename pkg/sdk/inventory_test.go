package sdk_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mesaops/mesa/pkg/sdk"
)

func TestInventoryLowStock(t *testing.T) {
	cases := []struct {
		name     string
		qty, min string
		want     bool
	}{
		{"below threshold", "2", "5", true},
		{"at threshold", "5", "5", true},
		{"above threshold", "8", "5", false},
		{"zero quantity", "0", "5", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := sdk.InventoryItem{
				Quantity:    decimal.RequireFromString(tc.qty),
				MinQuantity: decimal.RequireFromString(tc.min),
			}
			assert.Equal(t, tc.want, item.LowStock())
		})
	}
}
