package rendering

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/furqanmax/simplepos-printing/internal/domain/layout"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paperFixtures(t *testing.T, itemCount int) (*layout.LayoutPlan, *layout.InvoiceContent) {
	t.Helper()
	formats := layout.NewFormatRegistry()
	styles := layout.NewStyleRegistry()
	engine := layout.NewEngine(formats)

	format, err := formats.Lookup(layout.FormatA4)
	require.NoError(t, err)
	style, err := styles.Lookup(layout.StyleClassic)
	require.NoError(t, err)

	content := &layout.InvoiceContent{
		Meta: layout.InvoiceMeta{
			Number:   "INV-2026-0099",
			IssuedAt: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
			Operator: "carol",
		},
		BusinessName: "Corner Store",
		BusinessInfo: []string{"12 Main Street"},
		FooterText:   "Thank you",
		Totals: layout.Totals{
			TaxRatePercent: decimal.NewFromInt(5),
			CurrencySymbol: "$",
		},
	}
	subtotal := decimal.Zero
	for i := 0; i < itemCount; i++ {
		item := layout.LineItem{
			Name:      fmt.Sprintf("Product %03d", i+1),
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromFloat(5.00),
		}
		content.Items = append(content.Items, item)
		subtotal = subtotal.Add(item.LineTotal())
	}
	content.Totals.Subtotal = subtotal
	content.Totals.TaxTotal = subtotal.Mul(decimal.NewFromFloat(0.05))
	content.Totals.GrandTotal = subtotal.Add(content.Totals.TaxTotal)

	plan, err := engine.Plan(content, format, style, layout.PlanOptions{})
	require.NoError(t, err)
	return plan, content
}

func TestBuildInvoiceHTMLSinglePage(t *testing.T) {
	plan, content := paperFixtures(t, 10)

	html, err := BuildInvoiceHTML(plan, content)
	require.NoError(t, err)

	assert.Contains(t, html, "Corner Store")
	assert.Contains(t, html, "INV-2026-0099")
	assert.Contains(t, html, "Product 001")
	assert.Contains(t, html, "Grand Total:")
	assert.NotContains(t, html, "Continued...")
	assert.Equal(t, 1, strings.Count(html, `<div class="segment">`))
}

func TestBuildInvoiceHTMLMultiPage(t *testing.T) {
	plan, content := paperFixtures(t, 200)
	require.Greater(t, len(plan.Segments), 1)

	html, err := BuildInvoiceHTML(plan, content)
	require.NoError(t, err)

	assert.Equal(t, len(plan.Segments), strings.Count(html, `<div class="segment">`))
	assert.Equal(t, len(plan.Segments)-1, strings.Count(html, "Continued..."))
	assert.Contains(t, html, "Balance brought forward:")

	// Totals appear once, on the final page.
	assert.Equal(t, 1, strings.Count(html, "Grand Total:"))
}

func TestBuildInvoiceHTMLBorderPolicy(t *testing.T) {
	plan, content := paperFixtures(t, 5)

	bordered, err := BuildInvoiceHTML(plan, content)
	require.NoError(t, err)
	assert.Contains(t, bordered, "border: 0.5pt solid")

	plan.Config.Style.ShowBorders = false
	borderless, err := BuildInvoiceHTML(plan, content)
	require.NoError(t, err)
	assert.NotContains(t, borderless, "border: 0.5pt solid")
}

func TestBuildInvoiceHTMLEscapesUserText(t *testing.T) {
	plan, content := paperFixtures(t, 3)
	content.BusinessName = `<script>alert("x")</script>`

	html, err := BuildInvoiceHTML(plan, content)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
