package minibank_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/minibank"
)

// seededBank returns a Bank holding the six fixture accounts from
// testdata/config.yml.
func seededBank(t *testing.T) *minibank.Bank {
	t.Helper()
	cfg, err := minibank.LoadConfig(filepath.Join("testdata", "config.yml"))
	require.NoError(t, err)
	bank, err := minibank.NewBankFromConfig(cfg)
	require.NoError(t, err)
	return bank
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
