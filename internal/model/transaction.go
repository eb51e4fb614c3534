// Package model defines the core domain types: transactions, their types,
// and the fixed category set.
package model

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Domain validation errors.
var (
	ErrEmptyDescription       = errors.New("description must not be empty")
	ErrInvalidAmount          = errors.New("amount must be a positive number")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrUnknownCategory        = errors.New("unknown category")
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// TypeIncome represents money received.
	TypeIncome TransactionType = "Income"
	// TypeExpense represents money spent.
	TypeExpense TransactionType = "Expense"
)

// DefaultTransactionType is the type a fresh entry form starts with.
const DefaultTransactionType = TypeExpense

// Valid reports whether t is one of the two known types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Sign returns +1 for income and -1 for expense, the factor applied to
// amounts when computing balances.
func (t TransactionType) Sign() float64 {
	if t == TypeIncome {
		return 1
	}
	return -1
}

// ParseTransactionType converts a serialized type name back to its constant.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransactionType, s)
	}
}

// Transaction is a single recorded income or expense.
// Amount is always a positive magnitude; the sign is derived from Type at
// aggregation time, never stored.
type Transaction struct {
	Date        time.Time
	Description string
	Category    Category
	Type        TransactionType
	Amount      float64
}

// Validate checks the transaction invariants: non-empty description,
// positive finite amount, known type and category.
func (t *Transaction) Validate() error {
	if t.Description == "" {
		return ErrEmptyDescription
	}
	if t.Amount <= 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidAmount, t.Amount)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTransactionType, string(t.Type))
	}
	if !t.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, string(t.Category))
	}
	return nil
}

// Signed returns the amount with the sign implied by the transaction type.
func (t *Transaction) Signed() float64 {
	return t.Type.Sign() * t.Amount
}

// NaiveTime normalizes a time to its wall-clock fields carried in UTC.
// Dates are naive throughout the application: no timezone conversion ever
// applies, and epoch seconds derive from the wall-clock fields directly.
// Normalizing the location makes naive times comparable and serializable
// regardless of the host timezone.
func NaiveTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
