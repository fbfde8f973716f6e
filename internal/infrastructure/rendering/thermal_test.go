package rendering

import (
	"strings"
	"testing"
	"time"

	"github.com/furqanmax/simplepos-printing/internal/domain/layout"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func thermalFixtures(t *testing.T) (*layout.LayoutPlan, *layout.InvoiceContent) {
	t.Helper()
	formats := layout.NewFormatRegistry()
	styles := layout.NewStyleRegistry()
	engine := layout.NewEngine(formats)

	format, err := formats.Lookup(layout.FormatThermal58)
	require.NoError(t, err)
	style, err := styles.Lookup(layout.StyleClassic)
	require.NoError(t, err)

	content := &layout.InvoiceContent{
		Meta: layout.InvoiceMeta{
			Number:   "INV-7",
			IssuedAt: time.Date(2026, 5, 2, 18, 45, 0, 0, time.UTC),
			Operator: "bob",
		},
		BusinessName: "Corner Store",
		BusinessInfo: []string{"12 Main Street"},
		FooterText:   "See you soon",
		Items: []layout.LineItem{
			{Name: "Flat White", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(4.50)},
			{Name: "A Rather Long Pastry Name Indeed", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(3.25)},
		},
		Totals: layout.Totals{
			Subtotal:       decimal.NewFromFloat(12.25),
			TaxRatePercent: decimal.NewFromInt(10),
			TaxTotal:       decimal.NewFromFloat(1.23),
			GrandTotal:     decimal.NewFromFloat(13.48),
			CurrencySymbol: "$",
		},
	}

	plan, err := engine.Plan(content, format, style, layout.PlanOptions{})
	require.NoError(t, err)
	return plan, content
}

func TestRenderThermalTextWidthBudget(t *testing.T) {
	plan, content := thermalFixtures(t)

	text := RenderThermalText(plan, content)
	for i, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), plan.Config.CharsPerLine,
			"line %d exceeds the character budget: %q", i, line)
	}
}

func TestRenderThermalTextContent(t *testing.T) {
	plan, content := thermalFixtures(t)

	text := RenderThermalText(plan, content)

	assert.Contains(t, text, "Corner Store")
	assert.Contains(t, text, "INV-7")
	assert.Contains(t, text, "Flat White")
	assert.Contains(t, text, "$13.48")
	assert.Contains(t, text, "Tax (10.0%):")
	assert.Contains(t, text, strings.Repeat("=", plan.Config.CharsPerLine))
	assert.NotContains(t, text, "A Rather Long Pastry Name Indeed",
		"over-budget names are truncated, never wrapped")
}
