package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		txType  string
		income  bool
		expense bool
	}{
		{"income", true, false},
		{"INCOME", true, false},
		{"Side Income", true, false},
		{"expense", false, true},
		{"Expense", false, true},
		{"monthly-expenses", false, true},
		{"transfer", false, false},
		{"", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.txType, func(t *testing.T) {
			assert.Equal(t, tc.income, isIncome(tc.txType))
			assert.Equal(t, tc.expense, isExpense(tc.txType))
		})
	}
}
