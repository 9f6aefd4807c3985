package domain_test

import (
	"testing"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsCreditType(t *testing.T) {
	tests := []struct {
		name           string
		amountTypeName string
		want           bool
	}{
		{name: "income is credit", amountTypeName: "Income", want: true},
		{name: "credit card is credit", amountTypeName: "Credit Card", want: true},
		{name: "cash debit is debit", amountTypeName: "Cash Debit", want: false},
		{name: "uppercase credit", amountTypeName: "CREDIT", want: true},
		{name: "uppercase income substring", amountTypeName: "SIDE INCOME", want: true},
		{name: "plain cash is debit", amountTypeName: "Cash", want: false},
		{name: "empty name is debit", amountTypeName: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsCreditType(tt.amountTypeName))
		})
	}
}

func TestClassifyAmountType(t *testing.T) {
	assert.Equal(t, domain.ClassCredit, domain.ClassifyAmountType("Income"))
	assert.Equal(t, domain.ClassDebit, domain.ClassifyAmountType("Cash Debit"))
	assert.Equal(t, domain.ClassCredit, domain.ClassifyAmountType("credit"))
}
