package utils_test

import (
	"testing"

	"github.com/ramidarshan07/wealthtrack/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims and collapses whitespace", input: "  monthly   rent ", want: "Monthly Rent"},
		{name: "lowers the tail of each word", input: "GROCERIES", want: "Groceries"},
		{name: "mixed case words", input: "uPi tRANSFER", want: "Upi Transfer"},
		{name: "single word", input: "cash", want: "Cash"},
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.NormalizeName(tt.input))
		})
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	once := utils.NormalizeName("  monthly   rent ")
	twice := utils.NormalizeName(once)
	assert.Equal(t, once, twice)
}
