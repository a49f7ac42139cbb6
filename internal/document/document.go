// Package document assembles the printable representation of a budget.
// Assembly is pure: the Document value carries every formatted string
// the print surface needs, so renderers stay free of business rules.
package document

import (
	"strconv"
	"strings"

	"github.com/noah-isme/orcamento-api/internal/budget"
	"github.com/noah-isme/orcamento-api/internal/money"
)

// Literals rendered on the document, kept in the product's locale.
const (
	Title                 = "ORÇAMENTO"
	FallbackClientField   = "Não informado"
	FallbackItemDesc      = "Produto sem descrição"
	ItemsHeading          = "ITENS DO ORÇAMENTO"
	clientHeadingPrefix   = "PROPOSTA COMERCIAL - "
	fallbackClientHeading = "CLIENTE"
	summaryHeading        = "RESUMO FINANCEIRO"
	consultantPlaceholder = "Sistema Automatizado"
)

// footerTerms is the fixed commercial-conditions block.
var footerTerms = []string{
	"CONDIÇÕES COMERCIAIS E VALORES PARA FECHAMENTO DESTE ORÇAMENTO COMPLETO",
	"• PAGAMENTO: À VISTA OU PARCELADO CONFORME NEGOCIAÇÃO",
	"• PRAZO DE ENTREGA: CONFORME DISPONIBILIDADE",
	"• GARANTIA: CONSULTAR TERMO DO FABRICANTE",
}

// Document is the complete printable representation of a budget.
type Document struct {
	Header         Header          `json:"header"`
	CompanyContact *CompanyContact `json:"companyContact,omitempty"`
	Client         ClientBlock     `json:"client"`
	Meta           MetaBlock       `json:"meta"`
	Items          []ItemRow       `json:"items"`
	Summary        Summary         `json:"summary"`
	Footer         Footer          `json:"footer"`
}

// Header is the company identity banner.
type Header struct {
	CompanyName     string `json:"companyName"`
	CompanySubtitle string `json:"companySubtitle"`
	Title           string `json:"title"`
	Number          string `json:"number"`
}

// CompanyContact is shown only when the company filled in any of
// phone, tax id or address.
type CompanyContact struct {
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"taxId,omitempty"`
	Address   string `json:"address,omitempty"`
	IssueDate string `json:"issueDate"`
}

// ClientBlock presents the four client fields, each falling back to a
// placeholder when empty.
type ClientBlock struct {
	Heading string `json:"heading"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// MetaBlock presents the budget identification details.
type MetaBlock struct {
	Number     string `json:"number"`
	Date       string `json:"date"`
	ValidUntil string `json:"validUntil"`
	Consultant string `json:"consultant"`
}

// ItemRow is one formatted line of the itemised table.
type ItemRow struct {
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	UnitPrice      string `json:"unitPrice"`
	Total          string `json:"total"`
	ImageReference string `json:"imageReference,omitempty"`
}

// SummaryRow is a labelled amount in the financial summary.
type SummaryRow struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// Summary is the financial summary block. Discount and tax rows are
// present exactly when their percentage is positive; the post-discount
// subtotal accompanies the discount row.
type Summary struct {
	Heading       string      `json:"heading"`
	Subtotal      string      `json:"subtotal"`
	Discount      *SummaryRow `json:"discount,omitempty"`
	AfterDiscount *SummaryRow `json:"afterDiscount,omitempty"`
	Tax           *SummaryRow `json:"tax,omitempty"`
	Total         string      `json:"total"`
}

// Footer is the fixed terms block plus the validity line.
type Footer struct {
	Terms      []string `json:"terms"`
	ValidUntil string   `json:"validUntil"`
}

// Assemble builds the printable document from the session state and its
// computed totals. Amounts are formatted in the given currency; empty
// falls back to BRL.
func Assemble(client budget.ClientInfo, company budget.CompanyInfo, meta budget.Meta, items []budget.LineItem, totals budget.Totals, currency string) Document {
	doc := Document{
		Header: Header{
			CompanyName:     company.Name,
			CompanySubtitle: company.Subtitle,
			Title:           Title,
			Number:          "#" + meta.Number,
		},
		Client: ClientBlock{
			Heading: clientHeading(client.Name),
			Name:    fallback(client.Name, FallbackClientField),
			Email:   fallback(client.Email, FallbackClientField),
			Phone:   fallback(client.Phone, FallbackClientField),
			Address: fallback(client.Address, FallbackClientField),
		},
		Meta: MetaBlock{
			Number:     meta.Number,
			Date:       money.FormatDate(meta.Date),
			ValidUntil: money.FormatDate(meta.ValidUntil),
			Consultant: consultantPlaceholder,
		},
		Summary: assembleSummary(meta, totals, currency),
		Footer: Footer{
			Terms:      footerTerms,
			ValidUntil: money.FormatDate(meta.ValidUntil),
		},
	}
	if company.Phone != "" || company.TaxID != "" || company.Address != "" {
		doc.CompanyContact = &CompanyContact{
			Phone:     company.Phone,
			TaxID:     company.TaxID,
			Address:   company.Address,
			IssueDate: money.FormatDate(meta.Date),
		}
	}
	doc.Items = make([]ItemRow, 0, len(items))
	for _, item := range items {
		doc.Items = append(doc.Items, ItemRow{
			Description:    fallback(item.Description, FallbackItemDesc),
			Quantity:       item.Quantity,
			UnitPrice:      money.Format(item.UnitPrice, currency),
			Total:          money.Format(item.Total, currency),
			ImageReference: item.ImageReference,
		})
	}
	return doc
}

func assembleSummary(meta budget.Meta, totals budget.Totals, currency string) Summary {
	summary := Summary{
		Heading:  summaryHeading,
		Subtotal: money.Format(totals.Subtotal, currency),
		Total:    money.Format(totals.Total, currency),
	}
	if meta.Discount > 0 {
		summary.Discount = &SummaryRow{
			Label:  "DESCONTO (" + formatPercent(meta.Discount) + "):",
			Amount: "- " + money.Format(totals.DiscountAmount, currency),
		}
		summary.AfterDiscount = &SummaryRow{
			Label:  "SUBTOTAL COM DESCONTO:",
			Amount: money.Format(totals.SubtotalAfterDiscount, currency),
		}
	}
	if meta.Tax > 0 {
		summary.Tax = &SummaryRow{
			Label:  "IMPOSTOS (" + formatPercent(meta.Tax) + "):",
			Amount: money.Format(totals.TaxAmount, currency),
		}
	}
	return summary
}

func clientHeading(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return clientHeadingPrefix + fallbackClientHeading
	}
	return clientHeadingPrefix + strings.ToUpper(trimmed)
}

func fallback(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
