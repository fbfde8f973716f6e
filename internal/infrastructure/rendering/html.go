package rendering

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/furqanmax/simplepos-printing/internal/domain/layout"
	"github.com/shopspring/decimal"
)

// invoiceTemplate lays out one segment per printed page. Column widths and
// border policy come straight from the resolved layout config so the drawn
// document matches the plan's fitting decisions.
var invoiceTemplate = template.Must(template.New("invoice").Parse(`
<style>
  body { font-family: {{.FontFamily}}, sans-serif; font-size: {{.BaseSize}}pt; margin: 0; }
  .segment { page-break-after: always; }
  .segment:last-child { page-break-after: auto; }
  h1 { font-size: {{.TitleSize}}pt; margin: 0 0 4mm 0; }
  .meta { font-size: {{.BaseSize}}pt; margin-bottom: 4mm; }
  .continued { font-style: italic; color: #666; margin-bottom: 2mm; }
  table.items { width: 100%; border-collapse: collapse; font-size: {{.ItemSize}}pt; }
  table.items th { text-align: left; background: #eee; }
  {{if .ShowBorders}}table.items th, table.items td { border: 0.5pt solid #999; padding: 1mm; }{{else}}table.items th, table.items td { padding: 1mm 1mm 1mm 0; }{{end}}
  td.num, th.num { text-align: right; }
  .totals { margin-top: 4mm; text-align: right; font-size: {{.BaseSize}}pt; }
  .totals .grand { font-weight: bold; border-top: 1pt solid #000; }
  .footer { margin-top: 6mm; text-align: center; font-size: {{.FooterSize}}pt; color: #666; }
  .qr-grid img, .qr-grid .qr { display: inline-block; margin-right: {{.QRSpacing}}mm; }
  .logo { max-height: {{.LogoMax}}mm; }
</style>
{{- range .Segments}}
<div class="segment">
  {{- if .Continued}}
  <div class="continued">Continued...</div>
  <div class="meta">Balance brought forward: {{$.Currency}}{{.OpeningSubtotal}}</div>
  {{- else}}
  {{- if .LogoURI}}<img class="logo" src="{{.LogoURI}}" style="width:{{.LogoWidth}}mm;height:{{.LogoHeight}}mm">{{end}}
  <h1>{{$.BusinessName}}</h1>
  <div class="meta">
    {{- range $.BusinessInfo}}{{.}}<br>{{end -}}
    Invoice: {{$.InvoiceNumber}}<br>
    Date: {{$.IssuedAt}}<br>
    Operator: {{$.Operator}}
  </div>
  {{- end}}
  <table class="items">
    <tr>
      <th style="width:{{$.ItemColPct}}%">Item</th>
      {{- if $.ShowDescription}}<th style="width:{{$.DescColPct}}%">Description</th>{{end}}
      <th class="num" style="width:{{$.QtyColPct}}%">Qty</th>
      <th class="num" style="width:{{$.PriceColPct}}%">Unit Price</th>
      <th class="num" style="width:{{$.TotalColPct}}%">Total</th>
    </tr>
    {{- range .Rows}}
    <tr>
      <td>{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</td>
      {{- if $.ShowDescription}}<td>{{.Description}}</td>{{end}}
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{$.Currency}}{{.UnitPrice}}</td>
      <td class="num">{{$.Currency}}{{.LineTotal}}</td>
    </tr>
    {{- end}}
  </table>
  {{- if .QRLabels}}
  <div class="qr-grid">
    {{- range .QRLabels}}<span class="qr" style="width:{{$.QRSize}}mm;height:{{$.QRSize}}mm">{{.}}</span>{{end}}
  </div>
  {{- end}}
  {{- if .Last}}
  <div class="totals">
    Subtotal: {{$.Currency}}{{$.Subtotal}}<br>
    Tax ({{$.TaxRate}}%): {{$.Currency}}{{$.TaxTotal}}<br>
    <span class="grand">Grand Total: {{$.Currency}}{{$.GrandTotal}}</span>
  </div>
  <div class="footer">
    {{- if $.FooterText}}{{$.FooterText}}<br>{{end -}}
    Powered by SimplePOS
  </div>
  {{- end}}
</div>
{{- end}}
`))

type invoiceTemplateData struct {
	FontFamily      string
	BaseSize        int
	TitleSize       int
	ItemSize        int
	FooterSize      int
	ShowBorders     bool
	ShowDescription bool
	ItemColPct      string
	DescColPct      string
	QtyColPct       string
	PriceColPct     string
	TotalColPct     string
	QRSize          string
	QRSpacing       string
	LogoMax         string

	BusinessName  string
	BusinessInfo  []string
	InvoiceNumber string
	IssuedAt      string
	Operator      string
	FooterText    string
	Currency      string
	Subtotal      string
	TaxRate       string
	TaxTotal      string
	GrandTotal    string

	Segments []segmentTemplateData
}

type segmentTemplateData struct {
	Continued       bool
	Last            bool
	OpeningSubtotal string
	LogoURI         string
	LogoWidth       string
	LogoHeight      string
	Rows            []rowTemplateData
	QRLabels        []string
}

type rowTemplateData struct {
	Lines       []string
	Description string
	Quantity    string
	UnitPrice   string
	LineTotal   string
}

// BuildInvoiceHTML renders a paper layout plan into the HTML consumed by
// the PDF renderer. The output is deterministic for a given plan.
func BuildInvoiceHTML(plan *layout.LayoutPlan, content *layout.InvoiceContent) (string, error) {
	cfg := plan.Config

	data := invoiceTemplateData{
		FontFamily:      cfg.Fonts.Family,
		BaseSize:        cfg.Fonts.BaseSize,
		TitleSize:       cfg.Fonts.TitleSize,
		ItemSize:        cfg.Fonts.ItemSize,
		FooterSize:      cfg.Fonts.FooterSize,
		ShowBorders:     cfg.Style.ShowBorders,
		ShowDescription: cfg.Style.ShowDescription,
		ItemColPct:      pct(cfg.Style.Columns.Item),
		DescColPct:      pct(cfg.Style.Columns.Description),
		QtyColPct:       pct(cfg.Style.Columns.Qty),
		PriceColPct:     pct(cfg.Style.Columns.Price),
		TotalColPct:     pct(cfg.Style.Columns.Total),
		QRSize:          mm(cfg.QRSizeMM),
		QRSpacing:       mm(qrSpacingForHTML),
		LogoMax:         mm(cfg.LogoMaxMM),

		BusinessName:  content.BusinessName,
		BusinessInfo:  content.BusinessInfo,
		InvoiceNumber: content.Meta.Number,
		IssuedAt:      content.Meta.IssuedAt.Format("2006-01-02 15:04"),
		Operator:      content.Meta.Operator,
		FooterText:    content.FooterText,
		Currency:      content.Totals.CurrencySymbol,
		Subtotal:      amount(content.Totals.Subtotal),
		TaxRate:       content.Totals.TaxRatePercent.StringFixed(1),
		TaxTotal:      amount(content.Totals.TaxTotal),
		GrandTotal:    amount(content.Totals.GrandTotal),
	}

	for i, seg := range plan.Segments {
		segData := segmentTemplateData{
			Continued:       seg.Continued,
			Last:            i == len(plan.Segments)-1,
			OpeningSubtotal: amount(seg.OpeningSubtotal),
		}
		if seg.Logo != nil {
			segData.LogoURI = seg.Logo.URI
			segData.LogoWidth = mm(seg.Logo.WidthMM)
			segData.LogoHeight = mm(seg.Logo.HeightMM)
		}
		for _, row := range seg.Rows {
			segData.Rows = append(segData.Rows, rowTemplateData{
				Lines:       row.Lines,
				Description: row.Description,
				Quantity:    row.Quantity.String(),
				UnitPrice:   amount(row.UnitPrice),
				LineTotal:   amount(row.LineTotal),
			})
		}
		if seg.QRCodes != nil {
			for _, payload := range seg.QRCodes.Payloads {
				segData.QRLabels = append(segData.QRLabels, payload.Label)
			}
		}
		data.Segments = append(data.Segments, segData)
	}

	var sb strings.Builder
	if err := invoiceTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render invoice template: %w", err)
	}
	return sb.String(), nil
}

const qrSpacingForHTML = 5.0

func pct(fraction float64) string {
	return fmt.Sprintf("%.0f", fraction*100)
}

func mm(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
