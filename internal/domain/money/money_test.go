//go:build unit

package money_test

import (
	"testing"

	"hotelier/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		cents int64
	}{
		{"100", 10000},
		{"100.00", 10000},
		{"99.5", 9950},
		{"0.05", 5},
		{"300.00", 30000},
		{"-12.34", -1234},
		{" 80.25 ", 8025},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := money.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.cents, m.Cents())
		})
	}

	t.Run("rejects malformed amounts", func(t *testing.T) {
		for _, s := range []string{"", ".", ".50", "100.123", "1,000", "abc", "100.0a", "10.-5", "1.+5", "+5.00", "1-0.50"} {
			_, err := money.Parse(s)
			assert.ErrorIs(t, err, money.ErrInvalidAmount, s)
		}
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{30000, "300.00"},
		{9950, "99.50"},
		{5, "0.05"},
		{0, "0.00"},
		{-1234, "-12.34"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, money.New(tt.cents).String())
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, s := range []string{"300.00", "0.05", "12.30", "-7.99"} {
		m, err := money.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}
}

func TestArithmetic(t *testing.T) {
	a := money.MustParse("100.00")
	b := money.MustParse("50.25")

	assert.Equal(t, "150.25", a.Add(b).String())
	assert.Equal(t, "300.00", a.MulNights(3).String())
	assert.False(t, a.IsNegative())
	assert.True(t, money.MustParse("-0.01").IsNegative())
}
