package presenter_test

import (
	"testing"

	"orderimport/internal/adapters/in/presenter"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := map[string]string{
		"0":           "R$ 0,00",
		"5":           "R$ 5,00",
		"18.3":        "R$ 18,30",
		"311.3":       "R$ 311,30",
		"1234.56":     "R$ 1.234,56",
		"1234567.891": "R$ 1.234.567,89",
		"100000":      "R$ 100.000,00",
		"-42.5":       "R$ -42,50",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, presenter.FormatBRL(decimal.RequireFromString(in)))
		})
	}
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "2,50 kg", presenter.FormatWeight(decimal.RequireFromString("2.5")))
	assert.Equal(t, "0,00 kg", presenter.FormatWeight(decimal.Zero))
	assert.Equal(t, "1.250,00 kg", presenter.FormatWeight(decimal.NewFromInt(1250)))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "6", presenter.FormatQuantity(decimal.NewFromInt(6)))
	assert.Equal(t, "1,5", presenter.FormatQuantity(decimal.RequireFromString("1.50")))
}
