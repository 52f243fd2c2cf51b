package minibank

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Defaults holds the policy parameters given to accounts opened through
// OpenAccount without an explicit limit.
type Defaults struct {
	MinBalance     decimal.Decimal
	OverdraftLimit decimal.Decimal
}

// Bank is the in-memory registry of accounts keyed by account number.
// It is not safe for concurrent use.
type Bank struct {
	accts    map[int64]*Account
	defaults Defaults
}

// NewBank returns a Bank holding the given seed accounts. Seeds sharing an
// account number are rejected with ErrAlreadyExists.
func NewBank(defaults Defaults, seed ...*Account) (*Bank, error) {
	b := &Bank{
		accts:    make(map[int64]*Account, len(seed)),
		defaults: defaults,
	}
	for _, a := range seed {
		if _, ok := b.accts[a.Num]; ok {
			return nil, ErrAlreadyExists{AcctNum: a.Num}
		}
		b.accts[a.Num] = a
	}
	return b, nil
}

func (b *Bank) FindAccount(num int64) (*Account, error) {
	a, ok := b.accts[num]
	if !ok {
		return nil, ErrNotFound{AcctNum: num}
	}
	return a, nil
}

// OpenAccount registers a new Savings or Chequing account. A nil limit
// selects the bank default for the kind.
func (b *Bank) OpenAccount(num int64, balance decimal.Decimal, kind Kind, limit *decimal.Decimal) (*Account, error) {
	if _, ok := b.accts[num]; ok {
		return nil, ErrAlreadyExists{AcctNum: num}
	}
	if balance.IsNegative() || (limit != nil && limit.IsNegative()) {
		return nil, ErrInvalidAmount
	}

	var a *Account
	switch kind {
	case KindSavings:
		lim := b.defaults.MinBalance
		if limit != nil {
			lim = *limit
		}
		a = NewSavingsAccount(num, balance, lim)
	case KindChequing:
		lim := b.defaults.OverdraftLimit
		if limit != nil {
			lim = *limit
		}
		a = NewChequingAccount(num, balance, lim)
	default:
		return nil, ErrInvalidKind{Kind: kind.String()}
	}

	b.accts[num] = a
	return a, nil
}

// Accounts lists every account ordered by account number.
func (b *Bank) Accounts() []*Account {
	out := make([]*Account, 0, len(b.accts))
	for _, a := range b.accts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Num < out[j].Num })
	return out
}
