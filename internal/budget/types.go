package budget

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/orcamento-api/internal/money"
)

// Default company identity shown until the user fills in their own.
const (
	DefaultCompanyName     = "SISTEMA DE ORÇAMENTO"
	DefaultCompanySubtitle = "Proposta Comercial Profissional"
)

// budgetNumberPrefix prefixes every generated budget number.
const budgetNumberPrefix = "ORC-"

// validityWindow is how long a fresh budget stays valid.
const validityWindow = 30 * 24 * time.Hour

// LineItem is one row of the quotation: a quantity of a described
// product or service at a unit price. Total is derived and never set
// independently.
type LineItem struct {
	ID             int64           `json:"id"`
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Total          decimal.Decimal `json:"total"`
	ImageReference string          `json:"imageReference,omitempty"`
}

// ClientInfo holds the customer block of the document. All fields are
// free text and optional.
type ClientInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CompanyInfo holds the issuing company block.
type CompanyInfo struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Phone    string `json:"phone"`
	TaxID    string `json:"taxId"`
	Address  string `json:"address"`
}

// Meta carries the budget identification and the discount/tax
// percentages. Discount and Tax are always clamped to [0, 100].
type Meta struct {
	Number     string  `json:"number"`
	Date       string  `json:"date"`
	ValidUntil string  `json:"validUntil"`
	Discount   float64 `json:"discount"`
	Tax        float64 `json:"tax"`
}

// NewMeta builds the default metadata for a fresh budget: a generated
// number, issue date today and a 30-day validity window.
func NewMeta(now time.Time) Meta {
	return Meta{
		Number:     budgetNumberPrefix + lastDigits(now.UnixMilli(), 6),
		Date:       money.ISODate(now),
		ValidUntil: money.ISODate(now.Add(validityWindow)),
	}
}

// ClampPercent forces a percentage into [0, 100]. NaN collapses to 0.
func ClampPercent(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func lastDigits(v int64, n int) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
