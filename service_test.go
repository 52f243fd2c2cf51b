package minibank_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/minibank"
)

func newTestService(tt *testing.T) (minibank.Service, *minibank.Bank) {
	tt.Helper()
	nooplog := zerolog.Nop()
	bank := seededBank(tt)
	svc := minibank.NewService(bank,
		minibank.NewLoggingMiddleware(&nooplog),
		minibank.NewValidationMiddleware(),
	)
	return svc, bank
}

func TestServiceDeposit(t *testing.T) {
	t.Run("returns the new balance on success", func(tt *testing.T) {
		as := assert.New(tt)
		svc, _ := newTestService(tt)
		bal, err := svc.Deposit(minibank.ChargeReq{AcctNum: 555, Amount: decimal.NewFromInt(1234)})
		as.NoError(err)
		as.Equal("6234", bal.String())

		bal, err = svc.Balance(minibank.BalanceReq{AcctNum: 555})
		as.NoError(err)
		as.Equal("6234", bal.String())
	})

	t.Run("returns ErrNotFound on an unknown account", func(tt *testing.T) {
		svc, _ := newTestService(tt)
		_, err := svc.Deposit(minibank.ChargeReq{AcctNum: 1, Amount: decimal.NewFromInt(1)})
		assert.ErrorAs(tt, err, &minibank.ErrNotFound{})
	})

	t.Run("leaves the balance unchanged on a negative amount", func(tt *testing.T) {
		as := assert.New(tt)
		svc, bank := newTestService(tt)
		_, err := svc.Deposit(minibank.ChargeReq{AcctNum: 555, Amount: decimal.NewFromInt(-1)})
		as.ErrorIs(err, minibank.ErrInvalidAmount)
		acct, err := bank.FindAccount(555)
		require.NoError(tt, err)
		as.Equal("5000", acct.Balance().String())
	})
}

func TestServiceWithdraw(t *testing.T) {
	t.Run("applies the savings floor of the seeded account", func(tt *testing.T) {
		as := assert.New(tt)
		svc, _ := newTestService(tt)
		_, err := svc.Withdraw(minibank.ChargeReq{AcctNum: 666, Amount: decimal.NewFromInt(3001)})
		var insf minibank.ErrInsufficientFunds
		as.ErrorAs(err, &insf)
		as.Equal("3000", insf.Available.String())

		bal, err := svc.Withdraw(minibank.ChargeReq{AcctNum: 666, Amount: decimal.NewFromInt(3000)})
		as.NoError(err)
		as.Equal("3000", bal.String())
	})

	t.Run("returns ErrNotFound on an unknown account", func(tt *testing.T) {
		svc, _ := newTestService(tt)
		_, err := svc.Withdraw(minibank.ChargeReq{AcctNum: 1, Amount: decimal.NewFromInt(1)})
		assert.ErrorAs(tt, err, &minibank.ErrNotFound{})
	})
}

func TestServiceOpenAccount(t *testing.T) {
	t.Run("rejects a seeded number", func(tt *testing.T) {
		svc, _ := newTestService(tt)
		_, err := svc.OpenAccount(minibank.OpenAccountReq{AcctNum: 111, Balance: decimal.NewFromInt(100), Kind: "Savings"})
		assert.ErrorAs(tt, err, &minibank.ErrAlreadyExists{})
	})

	t.Run("rejects an unknown kind", func(tt *testing.T) {
		svc, _ := newTestService(tt)
		_, err := svc.OpenAccount(minibank.OpenAccountReq{AcctNum: 777, Balance: decimal.NewFromInt(500), Kind: "Crypto"})
		assert.ErrorAs(tt, err, &minibank.ErrInvalidKind{})
	})

	t.Run("opens a chequing account findable afterwards", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		svc, _ := newTestService(tt)
		acct, err := svc.OpenAccount(minibank.OpenAccountReq{AcctNum: 777, Balance: decimal.NewFromInt(500), Kind: "CHEQUING"})
		reqrd.NoError(err)
		as.Equal(minibank.KindChequing, acct.Kind)

		found, err := svc.FindAccount(minibank.FindAccountReq{AcctNum: 777})
		reqrd.NoError(err)
		as.Same(acct, found)
		as.Equal("5500", found.Available().String())
	})
}

func TestServiceStatement(t *testing.T) {
	t.Run("writes a PDF document", func(tt *testing.T) {
		as := assert.New(tt)
		svc, _ := newTestService(tt)
		buf := &bytes.Buffer{}
		as.NoError(svc.Statement(buf))
		as.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	})
}
