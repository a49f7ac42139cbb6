package document

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF renders the document as an A4 portrait PDF.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(Title+" "+doc.Meta.Number), false)
	pdf.AddPage()

	// Header banner.
	pdf.SetFillColor(30, 58, 138)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, tr(doc.Header.CompanyName), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, tr(doc.Header.CompanySubtitle), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr(doc.Header.Title+" "+doc.Header.Number), "", 1, "R", true, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(51, 51, 51)
	if contact := doc.CompanyContact; contact != nil {
		pdf.SetFont("Arial", "", 9)
		if contact.Phone != "" {
			pdf.CellFormat(0, 5, tr("TEL: "+contact.Phone), "", 1, "L", false, 0, "")
		}
		if contact.TaxID != "" {
			pdf.CellFormat(0, 5, tr("CNPJ: "+contact.TaxID), "", 1, "L", false, 0, "")
		}
		if contact.Address != "" {
			pdf.CellFormat(0, 5, tr("Endereço: "+contact.Address), "", 1, "L", false, 0, "")
		}
		pdf.CellFormat(0, 5, tr("DATA: "+contact.IssueDate), "", 1, "L", false, 0, "")
		pdf.Ln(3)
	}

	// Client and budget details.
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, tr(doc.Client.Heading), "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(95, 5, tr("Nome: "+doc.Client.Name), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Número: "+doc.Meta.Number), "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, tr("Email: "+doc.Client.Email), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Data: "+doc.Meta.Date), "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, tr("Telefone: "+doc.Client.Phone), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Válido até: "+doc.Meta.ValidUntil), "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, tr("Endereço: "+doc.Client.Address), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Consultor: "+doc.Meta.Consultant), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Itemised table.
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 8, tr(ItemsHeading), "", 1, "L", false, 0, "")
	pdf.SetFillColor(55, 65, 81)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(95, 7, tr("DESCRIÇÃO"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "QUANT", "1", 0, "C", true, 0, "")
	pdf.CellFormat(37, 7, "VALOR UNIT.", "1", 0, "C", true, 0, "")
	pdf.CellFormat(38, 7, "VALOR TOTAL", "1", 1, "C", true, 0, "")
	pdf.SetTextColor(51, 51, 51)
	pdf.SetFont("Arial", "", 9)
	for _, row := range doc.Items {
		pdf.CellFormat(95, 7, tr(row.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, strconv.Itoa(row.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(37, 7, tr(row.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(38, 7, tr(row.Total), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// Financial summary.
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 8, tr(doc.Summary.Heading), "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	summaryLine(pdf, tr, "SUBTOTAL:", doc.Summary.Subtotal)
	if row := doc.Summary.Discount; row != nil {
		summaryLine(pdf, tr, row.Label, row.Amount)
	}
	if row := doc.Summary.AfterDiscount; row != nil {
		summaryLine(pdf, tr, row.Label, row.Amount)
	}
	if row := doc.Summary.Tax; row != nil {
		summaryLine(pdf, tr, row.Label, row.Amount)
	}
	pdf.SetFont("Arial", "B", 11)
	summaryLine(pdf, tr, "TOTAL", doc.Summary.Total)
	pdf.Ln(6)

	// Footer terms.
	pdf.SetFont("Arial", "", 8)
	for _, term := range doc.Footer.Terms {
		pdf.CellFormat(0, 4, tr(term), "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 4, tr("• VALIDADE DESTA PROPOSTA: "+doc.Footer.ValidUntil), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render document pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func summaryLine(pdf *gofpdf.Fpdf, tr func(string) string, label, amount string) {
	pdf.CellFormat(150, 6, tr(label), "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, tr(amount), "", 1, "R", false, 0, "")
}
