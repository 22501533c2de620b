package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFinePolicyCalculate(t *testing.T) {
	policy := DefaultFinePolicy()

	tests := []struct {
		name        string
		dueDate     time.Time
		evaluatedAt time.Time
		expected    string
	}{
		{
			name:        "returned before due date",
			dueDate:     date(2024, 1, 10),
			evaluatedAt: date(2024, 1, 5),
			expected:    "0",
		},
		{
			name:        "returned on due date",
			dueDate:     date(2024, 1, 10),
			evaluatedAt: date(2024, 1, 10),
			expected:    "0",
		},
		{
			name:        "inside grace period",
			dueDate:     date(2024, 1, 1),
			evaluatedAt: date(2024, 1, 3),
			expected:    "0",
		},
		{
			name:        "last grace day",
			dueDate:     date(2024, 1, 1),
			evaluatedAt: date(2024, 1, 4),
			expected:    "0",
		},
		{
			name:        "one billable day past grace",
			dueDate:     date(2024, 1, 1),
			evaluatedAt: date(2024, 1, 5),
			expected:    "10",
		},
		{
			name:        "one week late",
			dueDate:     date(2024, 1, 1),
			evaluatedAt: date(2024, 1, 8),
			expected:    "40",
		},
		{
			name:        "exactly at billable day cap",
			dueDate:     date(2024, 1, 1),
			evaluatedAt: date(2024, 2, 3),
			expected:    "300",
		},
		{
			name:        "two months late hits the cap",
			dueDate:     date(2024, 1, 1),
			evaluatedAt: date(2024, 3, 1),
			expected:    "300",
		},
		{
			name:        "a year late still capped",
			dueDate:     date(2024, 1, 1),
			evaluatedAt: date(2025, 1, 1),
			expected:    "300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fine := policy.Calculate(tt.dueDate, tt.evaluatedAt)
			expected, err := decimal.NewFromString(tt.expected)
			assert.NoError(t, err)
			assert.True(t, fine.Equal(expected),
				"expected %s, got %s", expected.String(), fine.String())
		})
	}
}

func TestFinePolicyCalculateNeverNegative(t *testing.T) {
	policy := DefaultFinePolicy()

	// Walk the first 50 days after the due date: the fine must be
	// monotonically non-decreasing, never negative and never above the cap.
	due := date(2024, 6, 1)
	previous := decimal.Zero
	for day := 0; day <= 50; day++ {
		fine := policy.Calculate(due, due.AddDate(0, 0, day))
		assert.False(t, fine.IsNegative(), "day %d: fine is negative", day)
		assert.True(t, fine.LessThanOrEqual(policy.MaxFine), "day %d: fine above cap", day)
		assert.True(t, fine.GreaterThanOrEqual(previous), "day %d: fine decreased", day)
		previous = fine
	}
}

func TestLoanFineAt(t *testing.T) {
	policy := DefaultFinePolicy()

	t.Run("open loan evaluates against asOf", func(t *testing.T) {
		loan := &Loan{DueDate: date(2024, 1, 1)}
		fine := loan.FineAt(policy, date(2024, 1, 5))
		assert.True(t, fine.Equal(decimal.NewFromInt(10)))
	})

	t.Run("closed loan evaluates against return date", func(t *testing.T) {
		returned := date(2024, 1, 2)
		loan := &Loan{DueDate: date(2024, 1, 1), ReturnDate: &returned}

		// Even evaluated a year later, the return date fixes the fine.
		fine := loan.FineAt(policy, date(2025, 1, 1))
		assert.True(t, fine.IsZero())
	})
}

func TestLoanIsOverdue(t *testing.T) {
	due := date(2024, 1, 10)

	t.Run("open and past due", func(t *testing.T) {
		loan := &Loan{DueDate: due}
		assert.False(t, loan.IsOverdue(date(2024, 1, 10)))
		assert.True(t, loan.IsOverdue(date(2024, 1, 11)))
	})

	t.Run("returned loans are never overdue", func(t *testing.T) {
		returned := date(2024, 1, 20)
		loan := &Loan{DueDate: due, ReturnDate: &returned}
		assert.False(t, loan.IsOverdue(date(2024, 2, 1)))
	})
}

func TestLoanIsClosed(t *testing.T) {
	open := &Loan{DueDate: date(2024, 1, 10)}
	assert.False(t, open.IsClosed())

	returned := date(2024, 1, 12)
	closed := &Loan{DueDate: date(2024, 1, 10), ReturnDate: &returned}
	assert.True(t, closed.IsClosed())
}
