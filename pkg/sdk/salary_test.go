package sdk_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesaops/mesa/pkg/sdk"
)

func TestSalaryNet(t *testing.T) {
	r := sdk.SalaryRecord{
		Amount:     decimal.RequireFromString("3000.00"),
		Bonus:      decimal.RequireFromString("250.50"),
		Deductions: decimal.RequireFromString("100.25"),
	}
	assert.Equal(t, "3150.25", r.Net().StringFixed(2))
}

func TestStaffRefAcceptsBareIDOrObject(t *testing.T) {
	var rec sdk.SalaryRecord
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"s1","staff":"u9","amount":100}`), &rec))
	assert.Equal(t, "u9", rec.Staff.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"_id":"s2","staff":{"_id":"u9","name":"Ada"},"amount":100}`), &rec))
	assert.Equal(t, "u9", rec.Staff.ID)
	assert.Equal(t, "Ada", rec.Staff.Name)
}
