package minibank_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arhyth/minibank"
)

func TestWriteStatement(t *testing.T) {
	at := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

	t.Run("renders every account kind", func(tt *testing.T) {
		as := assert.New(tt)
		accts := []*minibank.Account{
			minibank.NewBasicAccount(1, dec("10")),
			minibank.NewSavingsAccount(2, dec("50"), dec("100")),
			minibank.NewChequingAccount(3, dec("-4500"), dec("5000")),
		}
		buf := &bytes.Buffer{}
		as.NoError(minibank.WriteStatement(buf, accts, at))
		as.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		as.True(bytes.Contains(buf.Bytes(), []byte("%%EOF")))
	})

	t.Run("renders one row per account", func(tt *testing.T) {
		as := assert.New(tt)
		accts := []*minibank.Account{
			minibank.NewBasicAccount(101, dec("10")),
			minibank.NewSavingsAccount(444, dec("4000"), dec("1000")),
			minibank.NewChequingAccount(111, dec("-4500"), dec("5000")),
		}
		buf := &bytes.Buffer{}
		as.NoError(minibank.WriteStatementPlain(buf, accts, at))
		pdf := buf.String()
		for _, want := range []string{
			"(101)", "(Basic)", "(10.00)",
			"(444)", "(Savings)", "(4000.00)", "(1000.00)", "(3000.00)",
			"(111)", "(Chequing)", "(-4500.00)", "(5000.00)", "(500.00)",
		} {
			as.Contains(pdf, want)
		}
	})

	t.Run("renders an empty bank", func(tt *testing.T) {
		buf := &bytes.Buffer{}
		assert.NoError(tt, minibank.WriteStatement(buf, nil, at))
		assert.NotZero(tt, buf.Len())
	})
}
