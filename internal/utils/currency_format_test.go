package utils_test

import (
	"testing"

	"github.com/ramidarshan07/wealthtrack/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "zero", amount: decimal.Zero, want: "₹ 0.00"},
		{name: "small", amount: decimal.NewFromInt(50), want: "₹ 50.00"},
		{name: "thousands", amount: decimal.NewFromInt(1500), want: "₹ 1,500.00"},
		{name: "lakh grouping", amount: decimal.NewFromInt(1234567), want: "₹ 12,34,567.00"},
		{name: "fraction", amount: decimal.NewFromFloat(99.9), want: "₹ 99.90"},
		{name: "negative", amount: decimal.NewFromInt(-50), want: "₹ -50.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatINR(tt.amount))
		})
	}
}
