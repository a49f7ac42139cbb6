package money_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/orcamento-api/internal/money"
)

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"0":       "R$0,00",
		"5":       "R$5,00",
		"99.9":    "R$99,90",
		"1234.5":  "R$1.234,50",
		"170.10":  "R$170,10",
		"1000000": "R$1.000.000,00",
	}
	for amount, want := range cases {
		got := money.Format(decimal.RequireFromString(amount), money.DefaultCurrency)
		require.Equal(t, want, got, "amount %s", amount)
	}
}

func TestFormatFallsBackToDefaultCurrency(t *testing.T) {
	amount := decimal.RequireFromString("10")
	require.Equal(t, "R$10,00", money.Format(amount, ""))
	require.Equal(t, "R$10,00", money.Format(amount, "NOPE"))
}

func TestFormatOtherCurrency(t *testing.T) {
	got := money.Format(decimal.RequireFromString("1234.5"), "USD")
	require.Equal(t, "$1,234.50", got)
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "27/08/2026", money.FormatDate("2026-08-27"))
	require.Equal(t, "", money.FormatDate(""))
	require.Equal(t, "", money.FormatDate("   "))
	require.Equal(t, "", money.FormatDate("27/08/2026"))
	require.Equal(t, "", money.FormatDate("not-a-date"))
}

func TestISODate(t *testing.T) {
	ts := time.Date(2026, 8, 27, 23, 59, 0, 0, time.UTC)
	require.Equal(t, "2026-08-27", money.ISODate(ts))
}
