package model

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestTransaction_Validate(t *testing.T) {
	date := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		txn     Transaction
		wantErr error
	}{
		{
			name: "valid expense",
			txn: Transaction{
				Date:        date,
				Description: "Groceries",
				Category:    CategoryFood,
				Type:        TypeExpense,
				Amount:      42.50,
			},
		},
		{
			name: "valid income",
			txn: Transaction{
				Date:        date,
				Description: "Paycheck",
				Category:    CategorySalary,
				Type:        TypeIncome,
				Amount:      1000,
			},
		},
		{
			name: "empty description",
			txn: Transaction{
				Date:     date,
				Category: CategoryFood,
				Type:     TypeExpense,
				Amount:   10,
			},
			wantErr: ErrEmptyDescription,
		},
		{
			name: "zero amount",
			txn: Transaction{
				Date:        date,
				Description: "Nothing",
				Category:    CategoryFood,
				Type:        TypeExpense,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			txn: Transaction{
				Date:        date,
				Description: "Refund typo",
				Category:    CategoryFood,
				Type:        TypeExpense,
				Amount:      -5,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "NaN amount",
			txn: Transaction{
				Date:        date,
				Description: "Broken",
				Category:    CategoryFood,
				Type:        TypeExpense,
				Amount:      math.NaN(),
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "infinite amount",
			txn: Transaction{
				Date:        date,
				Description: "Broken",
				Category:    CategoryFood,
				Type:        TypeExpense,
				Amount:      math.Inf(1),
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "unknown type",
			txn: Transaction{
				Date:        date,
				Description: "Mystery",
				Category:    CategoryFood,
				Type:        TransactionType("Transfer"),
				Amount:      10,
			},
			wantErr: ErrUnknownTransactionType,
		},
		{
			name: "unknown category",
			txn: Transaction{
				Date:        date,
				Description: "Mystery",
				Category:    Category("Crypto"),
				Type:        TypeExpense,
				Amount:      10,
			},
			wantErr: ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransaction_Signed(t *testing.T) {
	income := Transaction{Type: TypeIncome, Amount: 25}
	if got := income.Signed(); got != 25 {
		t.Errorf("income Signed() = %v, want 25", got)
	}

	expense := Transaction{Type: TypeExpense, Amount: 25}
	if got := expense.Signed(); got != -25 {
		t.Errorf("expense Signed() = %v, want -25", got)
	}
}

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		input   string
		want    TransactionType
		wantErr bool
	}{
		{input: "Income", want: TypeIncome},
		{input: "Expense", want: TypeExpense},
		{input: "income", wantErr: true},
		{input: "", wantErr: true},
		{input: "Transfer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTransactionType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownTransactionType) {
					t.Fatalf("ParseTransactionType(%q) err = %v, want ErrUnknownTransactionType", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTransactionType(%q) err = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTransactionType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNaiveTime(t *testing.T) {
	zone := time.FixedZone("UTC+7", 7*3600)
	local := time.Date(2024, 6, 15, 9, 30, 45, 123, zone)

	got := NaiveTime(local)

	if got.Location() != time.UTC {
		t.Errorf("NaiveTime location = %v, want UTC", got.Location())
	}
	if got.Year() != 2024 || got.Month() != time.June || got.Day() != 15 {
		t.Errorf("NaiveTime changed the calendar date: %v", got)
	}
	if got.Hour() != 9 || got.Minute() != 30 || got.Second() != 45 || got.Nanosecond() != 123 {
		t.Errorf("NaiveTime changed the wall clock: %v", got)
	}
}
