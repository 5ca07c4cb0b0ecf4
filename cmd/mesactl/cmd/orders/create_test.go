package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesaops/mesa/pkg/sdk"
)

func TestParseItemArgs(t *testing.T) {
	items, err := parseItemArgs([]string{"m1:2", "m2"})
	require.NoError(t, err)
	assert.Equal(t, []sdk.OrderItem{
		{MenuItemID: "m1", Quantity: 2},
		{MenuItemID: "m2", Quantity: 1},
	}, items)
}

func TestParseItemArgsRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		raw  []string
	}{
		{"empty", nil},
		{"missing id", []string{":2"}},
		{"non-numeric quantity", []string{"m1:two"}},
		{"zero quantity", []string{"m1:0"}},
		{"negative quantity", []string{"m1:-1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseItemArgs(tc.raw)
			assert.Error(t, err)
		})
	}
}
