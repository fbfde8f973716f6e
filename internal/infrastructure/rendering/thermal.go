package rendering

import (
	"strings"
	"time"

	"github.com/furqanmax/simplepos-printing/internal/domain/layout"
	"github.com/shopspring/decimal"
)

// RenderThermalText realizes a thermal layout plan as monospace line
// output suitable for a receipt printer. Every line is at most the plan's
// character budget wide; numeric sub-columns are right-aligned so columns
// line up under a monospace font.
func RenderThermalText(plan *layout.LayoutPlan, content *layout.InvoiceContent) string {
	width := plan.Config.CharsPerLine
	var lines []string

	// Header
	lines = append(lines, layout.CenterText(content.BusinessName, width))
	for _, info := range content.BusinessInfo {
		lines = append(lines, layout.CenterText(info, width))
	}
	lines = append(lines, layout.SeparatorLine(width, "-"))

	// Invoice info
	lines = append(lines, layout.TruncateToWidth("Invoice: "+content.Meta.Number, width))
	lines = append(lines, layout.TruncateToWidth("Date: "+content.Meta.IssuedAt.Format("2006-01-02 15:04"), width))
	lines = append(lines, layout.TruncateToWidth("Cashier: "+content.Meta.Operator, width))
	lines = append(lines, layout.SeparatorLine(width, "-"))

	// Items
	lines = append(lines, layout.FormatLineLeftRight("ITEM", "AMOUNT", width))
	currency := content.Totals.CurrencySymbol

	qtyWidth, totalWidth := numericWidths(plan)
	for _, seg := range plan.Segments {
		for _, row := range seg.Rows {
			lines = append(lines, row.Lines[0])
			left := layout.PadLeft(row.Quantity.String(), qtyWidth) + " x " + currency + amountString(row.UnitPrice)
			right := layout.PadLeft(currency+amountString(row.LineTotal), totalWidth)
			lines = append(lines, layout.FormatLineLeftRight(left, right, width))
		}
	}
	lines = append(lines, layout.SeparatorLine(width, "-"))

	// Totals
	lines = append(lines, layout.FormatLineLeftRight("Subtotal:", currency+amountString(content.Totals.Subtotal), width))
	taxLabel := "Tax (" + content.Totals.TaxRatePercent.StringFixed(1) + "%):"
	lines = append(lines, layout.FormatLineLeftRight(taxLabel, currency+amountString(content.Totals.TaxTotal), width))
	lines = append(lines, layout.SeparatorLine(width, "="))
	lines = append(lines, layout.SeparatorLine(width, "="))
	lines = append(lines, layout.FormatLineLeftRight("TOTAL:", currency+amountString(content.Totals.GrandTotal), width))

	// Footer
	if content.FooterText != "" {
		lines = append(lines, layout.CenterText(content.FooterText, width))
	}
	lines = append(lines, layout.CenterText("Thank you for your business!", width))
	lines = append(lines, layout.CenterText(content.Meta.IssuedAt.Format(time.DateOnly), width))

	return strings.Join(lines, "\n") + "\n"
}

// numericWidths derives the fixed sub-column widths from the widest
// rendered numeric string across the plan's rows.
func numericWidths(plan *layout.LayoutPlan) (qtyWidth, totalWidth int) {
	currency := 0
	for _, seg := range plan.Segments {
		for _, row := range seg.Rows {
			if n := len([]rune(row.Quantity.String())); n > qtyWidth {
				qtyWidth = n
			}
			if n := len([]rune(amountString(row.LineTotal))) + currency; n > totalWidth {
				totalWidth = n
			}
		}
	}
	return qtyWidth, totalWidth
}

func amountString(d decimal.Decimal) string {
	return d.StringFixed(2)
}
