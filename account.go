package minibank

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind selects an account's withdrawal policy.
type Kind uint8

const (
	KindBasic Kind = iota
	KindSavings
	KindChequing
)

func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "Basic"
	case KindSavings:
		return "Savings"
	case KindChequing:
		return "Chequing"
	default:
		return "Unknown"
	}
}

// ParseKind matches the kinds that can be opened through a Bank, ignoring
// case and surrounding space. Basic accounts are only ever seeded.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "savings":
		return KindSavings, nil
	case "chequing":
		return KindChequing, nil
	default:
		return 0, ErrInvalidKind{Kind: s}
	}
}

// Account is a single ledger entry. For KindSavings, limit is the minimum
// balance; for KindChequing it is the overdraft limit; KindBasic ignores it.
type Account struct {
	Num     int64
	Kind    Kind
	balance decimal.Decimal
	limit   decimal.Decimal
}

func NewBasicAccount(num int64, balance decimal.Decimal) *Account {
	return &Account{Num: num, Kind: KindBasic, balance: balance}
}

func NewSavingsAccount(num int64, balance, minBalance decimal.Decimal) *Account {
	return &Account{Num: num, Kind: KindSavings, balance: balance, limit: minBalance}
}

func NewChequingAccount(num int64, balance, overdraftLimit decimal.Decimal) *Account {
	return &Account{Num: num, Kind: KindChequing, balance: balance, limit: overdraftLimit}
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Limit returns the kind-specific policy parameter.
func (a *Account) Limit() decimal.Decimal {
	return a.limit
}

// Available is the largest amount Withdraw would currently accept.
// A savings account sitting below its minimum reports a negative value.
func (a *Account) Available() decimal.Decimal {
	switch a.Kind {
	case KindSavings:
		return a.balance.Sub(a.limit)
	case KindChequing:
		return a.balance.Add(a.limit)
	default:
		return a.balance
	}
}

func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return a.balance, ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return a.balance, ErrInvalidAmount
	}
	avail := a.Available()
	if amount.GreaterThan(avail) {
		return a.balance, ErrInsufficientFunds{Kind: a.Kind, Available: avail}
	}
	a.balance = a.balance.Sub(amount)
	return a.balance, nil
}
