package document

import (
	"bytes"
	"fmt"
	"html/template"
)

// RenderHTML renders the document as a standalone printable HTML page.
func RenderHTML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render document html: %w", err)
	}
	return buf.Bytes(), nil
}

var pageTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="UTF-8">
<title>{{.Header.Title}} {{.Meta.Number}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: Arial, sans-serif; color: #333; line-height: 1.4; }
.header { background: #1e3a8a; color: white; padding: 25px; display: flex; justify-content: space-between; }
.header h1 { font-size: 28px; }
.header .subtitle { font-size: 14px; opacity: .9; }
.quote-number { font-size: 24px; font-weight: 800; }
.contact { background: #000; color: white; padding: 15px 25px; font-size: 11px; }
.section { padding: 25px; }
.section h2 { background: #374151; color: white; padding: 12px 20px; font-size: 14px; margin: 0 -25px 20px; }
.grid { display: grid; grid-template-columns: 1fr 1fr; gap: 30px; }
.block p { margin: 8px 0; font-size: 13px; }
table { width: 100%; border-collapse: collapse; }
thead th { background: #374151; color: white; padding: 12px; }
tbody td { padding: 12px; border-bottom: 1px solid #e5e7eb; }
td.num { text-align: center; }
td.money { text-align: right; font-weight: 600; }
.totals { max-width: 450px; margin-left: auto; }
.totals .row { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #f1f5f9; }
.totals .final { font-size: 18px; font-weight: 800; background: #1e3a8a; color: white; padding: 14px; }
.footer { background: #374151; color: white; padding: 20px; text-align: center; font-size: 11px; }
img.item { max-height: 48px; }
@media print { .section { page-break-inside: avoid; } }
</style>
</head>
<body>
<div class="header">
  <div>
    <h1>{{.Header.CompanyName}}</h1>
    <div class="subtitle">{{.Header.CompanySubtitle}}</div>
  </div>
  <div>
    <div>{{.Header.Title}}</div>
    <div class="quote-number">{{.Header.Number}}</div>
  </div>
</div>
{{with .CompanyContact}}
<div class="contact">
  {{if .Phone}}<p><strong>TEL:</strong> {{.Phone}}</p>{{end}}
  {{if .TaxID}}<p><strong>CNPJ:</strong> {{.TaxID}}</p>{{end}}
  {{if .Address}}<p><strong>Endereço:</strong> {{.Address}}</p>{{end}}
  <p><strong>DATA:</strong> {{.IssueDate}}</p>
</div>
{{end}}
<div class="section">
  <h2>{{.Client.Heading}}</h2>
  <div class="grid">
    <div class="block">
      <h3>Dados do Cliente</h3>
      <p><strong>Nome:</strong> {{.Client.Name}}</p>
      <p><strong>Email:</strong> {{.Client.Email}}</p>
      <p><strong>Telefone:</strong> {{.Client.Phone}}</p>
      <p><strong>Endereço:</strong> {{.Client.Address}}</p>
    </div>
    <div class="block">
      <h3>Detalhes do Orçamento</h3>
      <p><strong>Número:</strong> {{.Meta.Number}}</p>
      <p><strong>Data:</strong> {{.Meta.Date}}</p>
      <p><strong>Válido até:</strong> {{.Meta.ValidUntil}}</p>
      <p><strong>Consultor:</strong> {{.Meta.Consultant}}</p>
    </div>
  </div>
</div>
<div class="section">
  <h2>ITENS DO ORÇAMENTO</h2>
  <table>
    <thead>
      <tr><th>DESCRIÇÃO</th><th>QUANT</th><th>VALOR UNIT.</th><th>VALOR TOTAL</th></tr>
    </thead>
    <tbody>
      {{range .Items}}
      <tr>
        <td>{{.Description}}{{if .ImageReference}}<br><img class="item" src="{{.ImageReference}}" alt="">{{end}}</td>
        <td class="num">{{.Quantity}}</td>
        <td class="money">{{.UnitPrice}}</td>
        <td class="money">{{.Total}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
</div>
<div class="section">
  <div class="totals">
    <h2>{{.Summary.Heading}}</h2>
    <div class="row"><span>SUBTOTAL:</span><span>{{.Summary.Subtotal}}</span></div>
    {{with .Summary.Discount}}<div class="row"><span>{{.Label}}</span><span>{{.Amount}}</span></div>{{end}}
    {{with .Summary.AfterDiscount}}<div class="row"><span>{{.Label}}</span><span>{{.Amount}}</span></div>{{end}}
    {{with .Summary.Tax}}<div class="row"><span>{{.Label}}</span><span>{{.Amount}}</span></div>{{end}}
    <div class="row final"><span>TOTAL</span><span>{{.Summary.Total}}</span></div>
  </div>
</div>
<div class="footer">
  {{range .Footer.Terms}}<p>{{.}}</p>{{end}}
  <p>• VALIDADE DESTA PROPOSTA: {{.Footer.ValidUntil}}</p>
</div>
</body>
</html>
`))
