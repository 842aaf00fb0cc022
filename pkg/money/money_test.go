package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/pkg/money"
)

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{666, "$6.66"},
		{3040, "$30.40"},
		{15795, "$157.95"},
		{150000, "$1,500.00"},
		{123456789, "$1,234,567.89"},
		{-3040, "-$30.40"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, money.FormatCents(tc.cents), "cents=%d", tc.cents)
	}
}

func TestParseMajor(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1500", 150000},
		{"157.95", 15795},
		{"30.4", 3040},
		{"0.01", 1},
		// Regla documentada: más de 2 decimales redondea half-up.
		{"157.955", 15796},
		{"157.954", 15795},
		{"0.005", 1},
	}
	for _, tc := range cases {
		got, err := money.ParseMajor(tc.in)
		require.NoError(t, err, "in=%q", tc.in)
		assert.Equal(t, tc.want, got, "in=%q", tc.in)
	}
}

func TestParseMajor_EntradaInvalida(t *testing.T) {
	for _, in := range []string{"", "abc", "1,500.00", "$150"} {
		_, err := money.ParseMajor(in)
		assert.Error(t, err, "in=%q", in)
	}
}

// Identidad de ida y vuelta sobre montos con <= 2 dígitos fraccionarios.
func TestMajorToCents_RoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 3040, 15795, 150000, 999999999} {
		assert.Equal(t, cents, money.MajorToCents(money.CentsToMajor(cents)))
	}
}

func TestCentsToMajor(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(157.95).Equal(money.CentsToMajor(15795)))
	assert.True(t, decimal.Zero.Equal(money.CentsToMajor(0)))
}
