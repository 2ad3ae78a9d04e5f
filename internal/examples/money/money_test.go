package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCents_String(t *testing.T) {
	tests := []struct {
		amount   Cents
		expected string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1234, "$12.34"},
		{Dollars(100), "$100.00"},
		{-50, "-$0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.amount.String())
		})
	}
}

func TestCents_Percent(t *testing.T) {
	assert.Equal(t, Cents(150), Dollars(10).Percent(15))
	assert.Equal(t, Cents(3), Cents(33).Percent(10))
}
