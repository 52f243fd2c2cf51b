package minibank

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("amount cannot be negative")
)

type ErrBadRequest struct {
	Fields map[string]string
}

// Error renders each field as "<name> <problem>", ordered by name.
func (e ErrBadRequest) Error() string {
	names := make([]string, 0, len(e.Fields))
	for n := range e.Fields {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, n+" "+e.Fields[n])
	}
	if len(parts) == 0 {
		return "invalid input"
	}
	return strings.Join(parts, "; ")
}

type ErrNotFound struct {
	AcctNum int64
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("account %d not found", e.AcctNum)
}

type ErrAlreadyExists struct {
	AcctNum int64
}

func (e ErrAlreadyExists) Error() string {
	return fmt.Sprintf("account %d already exists", e.AcctNum)
}

// ErrInsufficientFunds is returned when a withdrawal would breach the
// account's floor. Available is the largest amount that could have been
// withdrawn and may be negative.
type ErrInsufficientFunds struct {
	Kind      Kind
	Available decimal.Decimal
}

func (e ErrInsufficientFunds) Error() string {
	switch e.Kind {
	case KindSavings:
		return fmt.Sprintf("insufficient funds, maximum allowed withdrawal: %s", e.Available)
	case KindChequing:
		return fmt.Sprintf("insufficient funds including overdraft limit, available funds: %s", e.Available)
	default:
		return "insufficient funds"
	}
}

type ErrInvalidKind struct {
	Kind string
}

func (e ErrInvalidKind) Error() string {
	return fmt.Sprintf("invalid account type %q, expected Savings or Chequing", e.Kind)
}

type ErrInvalidChoice struct {
	Choice string
}

func (e ErrInvalidChoice) Error() string {
	return fmt.Sprintf("invalid choice %q, please enter a valid option", e.Choice)
}
