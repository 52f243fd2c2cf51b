package minibank

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	_ Service = (*validationMiddleware)(nil)
	_ Service = (*loggingMiddleware)(nil)
)

type Middleware func(Service) Service

// validationMiddleware rejects requests the bank would refuse anyway, before
// any account is looked up.
type validationMiddleware struct {
	next Service
}

func NewValidationMiddleware() Middleware {
	return func(svc Service) Service {
		return &validationMiddleware{
			next: svc,
		}
	}
}

func (v *validationMiddleware) FindAccount(req FindAccountReq) (*Account, error) {
	return v.next.FindAccount(req)
}

func (v *validationMiddleware) OpenAccount(req OpenAccountReq) (*Account, error) {
	if req.Balance.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if req.Limit != nil && req.Limit.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if _, err := ParseKind(req.Kind); err != nil {
		return nil, err
	}
	return v.next.OpenAccount(req)
}

func (v *validationMiddleware) Deposit(req ChargeReq) (decimal.Decimal, error) {
	if req.Amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return v.next.Deposit(req)
}

func (v *validationMiddleware) Withdraw(req ChargeReq) (decimal.Decimal, error) {
	if req.Amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return v.next.Withdraw(req)
}

func (v *validationMiddleware) Balance(req BalanceReq) (decimal.Decimal, error) {
	return v.next.Balance(req)
}

func (v *validationMiddleware) Statement(w io.Writer) error {
	return v.next.Statement(w)
}

//
// Logging
//

// loggingMiddleware records the outcome of every call. Rejections that the
// session recovers from are logged at warn; anything else unexpected at error.
type loggingMiddleware struct {
	next Service
	log  *zerolog.Logger
}

func NewLoggingMiddleware(log *zerolog.Logger) Middleware {
	return func(next Service) Service {
		return &loggingMiddleware{
			next: next,
			log:  log,
		}
	}
}

func (l *loggingMiddleware) FindAccount(req FindAccountReq) (*Account, error) {
	acct, err := l.next.FindAccount(req)
	l.event(err).
		Str("method", "find_account").
		Int64("acct_num", req.AcctNum).
		Msg("find account")
	return acct, err
}

func (l *loggingMiddleware) OpenAccount(req OpenAccountReq) (*Account, error) {
	acct, err := l.next.OpenAccount(req)
	ev := l.event(err).
		Str("method", "open_account").
		Int64("acct_num", req.AcctNum).
		Str("kind", req.Kind).
		Stringer("balance", req.Balance)
	if acct != nil {
		ev = ev.Stringer("limit", acct.Limit())
	}
	ev.Msg("open account")
	return acct, err
}

func (l *loggingMiddleware) Deposit(req ChargeReq) (decimal.Decimal, error) {
	bal, err := l.next.Deposit(req)
	l.event(err).
		Str("method", "deposit").
		Int64("acct_num", req.AcctNum).
		Stringer("amount", req.Amount).
		Stringer("balance", bal).
		Msg("deposit")
	return bal, err
}

func (l *loggingMiddleware) Withdraw(req ChargeReq) (decimal.Decimal, error) {
	bal, err := l.next.Withdraw(req)
	l.event(err).
		Str("method", "withdraw").
		Int64("acct_num", req.AcctNum).
		Stringer("amount", req.Amount).
		Stringer("balance", bal).
		Msg("withdraw")
	return bal, err
}

func (l *loggingMiddleware) Balance(req BalanceReq) (decimal.Decimal, error) {
	bal, err := l.next.Balance(req)
	l.event(err).
		Str("method", "balance").
		Int64("acct_num", req.AcctNum).
		Stringer("balance", bal).
		Msg("balance")
	return bal, err
}

func (l *loggingMiddleware) Statement(w io.Writer) error {
	err := l.next.Statement(w)
	l.event(err).
		Str("method", "statement").
		Msg("statement")
	return err
}

func (l *loggingMiddleware) event(err error) *zerolog.Event {
	if err == nil {
		return l.log.Debug()
	}
	if isRecoverable(err) {
		return l.log.Warn().Err(err)
	}
	return l.log.Error().Err(err)
}

func isRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.As(err, &ErrInsufficientFunds{}) ||
		errors.As(err, &ErrNotFound{}) ||
		errors.As(err, &ErrAlreadyExists{}) ||
		errors.As(err, &ErrInvalidKind{}) ||
		errors.As(err, &ErrInvalidChoice{}) ||
		errors.As(err, &ErrBadRequest{})
}
