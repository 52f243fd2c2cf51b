package minibank

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/service.go -package=mocks github.com/arhyth/minibank Service

type FindAccountReq struct {
	AcctNum int64
}

type OpenAccountReq struct {
	AcctNum int64
	Balance decimal.Decimal
	Kind    string
	// Limit overrides the bank default minimum balance or overdraft limit.
	Limit *decimal.Decimal
}

type ChargeReq struct {
	AcctNum int64
	Amount  decimal.Decimal
}

type BalanceReq struct {
	AcctNum int64
}

type Service interface {
	FindAccount(FindAccountReq) (*Account, error)
	OpenAccount(OpenAccountReq) (*Account, error)
	Deposit(ChargeReq) (decimal.Decimal, error)
	Withdraw(ChargeReq) (decimal.Decimal, error)
	Balance(BalanceReq) (decimal.Decimal, error)
	Statement(io.Writer) error
}

var (
	_ Service = (*serviceImpl)(nil)
)

// NewService wraps bank in the given middlewares, outermost first.
func NewService(bank *Bank, mws ...Middleware) Service {
	var svc Service = &serviceImpl{
		bank: bank,
		now:  time.Now,
	}
	for i := len(mws) - 1; i >= 0; i-- {
		svc = mws[i](svc)
	}
	return svc
}

type serviceImpl struct {
	bank *Bank
	now  func() time.Time
}

func (s *serviceImpl) FindAccount(req FindAccountReq) (*Account, error) {
	return s.bank.FindAccount(req.AcctNum)
}

func (s *serviceImpl) OpenAccount(req OpenAccountReq) (*Account, error) {
	kind, err := ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	return s.bank.OpenAccount(req.AcctNum, req.Balance, kind, req.Limit)
}

func (s *serviceImpl) Deposit(req ChargeReq) (decimal.Decimal, error) {
	acct, err := s.bank.FindAccount(req.AcctNum)
	if err != nil {
		return decimal.Zero, err
	}
	return acct.Deposit(req.Amount)
}

func (s *serviceImpl) Withdraw(req ChargeReq) (decimal.Decimal, error) {
	acct, err := s.bank.FindAccount(req.AcctNum)
	if err != nil {
		return decimal.Zero, err
	}
	return acct.Withdraw(req.Amount)
}

func (s *serviceImpl) Balance(req BalanceReq) (decimal.Decimal, error) {
	acct, err := s.bank.FindAccount(req.AcctNum)
	if err != nil {
		return decimal.Zero, err
	}
	return acct.Balance(), nil
}

func (s *serviceImpl) Statement(w io.Writer) error {
	return WriteStatement(w, s.bank.Accounts(), s.now())
}
