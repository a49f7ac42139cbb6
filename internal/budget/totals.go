package budget

import "github.com/shopspring/decimal"

// Totals aggregates the five derived monetary figures of a budget.
type Totals struct {
	Subtotal              decimal.Decimal `json:"subtotal"`
	DiscountAmount        decimal.Decimal `json:"discountAmount"`
	SubtotalAfterDiscount decimal.Decimal `json:"subtotalAfterDiscount"`
	TaxAmount             decimal.Decimal `json:"taxAmount"`
	Total                 decimal.Decimal `json:"total"`
}

var hundred = decimal.NewFromInt(100)

// Compute derives the budget totals from the line items and the
// discount/tax percentages. The discount applies to the raw subtotal;
// tax applies to the post-discount amount. Pure: refreshing any display
// is the caller's responsibility.
func Compute(items []LineItem, discountPct, taxPct float64) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}
	discount := subtotal.Mul(decimal.NewFromFloat(ClampPercent(discountPct))).Div(hundred)
	afterDiscount := subtotal.Sub(discount)
	tax := afterDiscount.Mul(decimal.NewFromFloat(ClampPercent(taxPct))).Div(hundred)
	return Totals{
		Subtotal:              subtotal,
		DiscountAmount:        discount,
		SubtotalAfterDiscount: afterDiscount,
		TaxAmount:             tax,
		Total:                 afterDiscount.Add(tax),
	}
}
