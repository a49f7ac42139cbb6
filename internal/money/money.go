package money

import (
	"strings"
	"time"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency every budget is quoted in.
const DefaultCurrency = "BRL"

// ISOLayout is the wire format for calendar dates (what date inputs emit).
const ISOLayout = "2006-01-02"

// displayLayout is the pt-BR date rendering used on printed documents.
const displayLayout = "02/01/2006"

// Format renders an amount in major units as localized currency text,
// e.g. 1234.5 -> "R$1.234,50".
func Format(amount decimal.Decimal, code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		code = DefaultCurrency
	}
	cur := gomoney.GetCurrency(code)
	if cur == nil {
		cur = gomoney.GetCurrency(DefaultCurrency)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return gomoney.New(minor, cur.Code).Display()
}

// FormatDate converts an ISO calendar date into its pt-BR display form.
// Unparseable or empty input renders as an empty string, matching the
// behaviour of the form surface this feeds.
func FormatDate(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return ""
	}
	t, err := time.Parse(ISOLayout, iso)
	if err != nil {
		return ""
	}
	return t.Format(displayLayout)
}

// ISODate renders a time as an ISO calendar date.
func ISODate(t time.Time) string {
	return t.Format(ISOLayout)
}
