package layout

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ThermalLayout is the output of the thermal optimizer: the character
// budget, forced margins, font plan, and the fixed numeric sub-column
// widths that guarantee alignment under a monospace font.
type ThermalLayout struct {
	CharsPerLine int
	Margins      Margins
	Fonts        FontPlan

	// Right-aligned numeric sub-column widths, in characters, sized from
	// the widest expected string in each column.
	QtyWidth   int
	PriceWidth int
	TotalWidth int
}

// ThermalCharsPerLine derives the character budget for a thermal format:
// the head spans the full roll width, so the budget is the roll width
// divided by the fixed monospace pitch. The canonical widths produce
// 57mm -> 22, 58mm -> 23, 76mm -> 30, 80mm -> 32.
func ThermalCharsPerLine(format FormatDescriptor) int {
	return int(math.Floor(format.WidthMM / thermalCharPitchMM))
}

// OptimizeThermal resolves the thermal layout for the given content.
// Margins are forced to the format minimum; thermal stock has no
// decorative margin. Returns ErrInsufficientFormat when the roll is too
// narrow to carry even a truncation marker.
func OptimizeThermal(content *InvoiceContent, format FormatDescriptor) (ThermalLayout, error) {
	chars := ThermalCharsPerLine(format)
	if chars <= len(ellipsisMarker) {
		return ThermalLayout{}, ErrInsufficientFormat
	}

	tl := ThermalLayout{
		CharsPerLine: chars,
		Margins:      format.MinMargins,
		Fonts:        FontPlanFor(format),
	}

	for _, item := range content.Items {
		tl.QtyWidth = maxInt(tl.QtyWidth, len(formatQuantity(item.Quantity)))
		tl.PriceWidth = maxInt(tl.PriceWidth, len(formatAmount(item.UnitPrice)))
		tl.TotalWidth = maxInt(tl.TotalWidth, len(formatAmount(item.LineTotal())))
	}
	tl.TotalWidth = maxInt(tl.TotalWidth, len(formatAmount(content.Totals.GrandTotal)))

	return tl, nil
}

// TruncateToWidth shortens text so the rendered length is exactly
// min(len(text), width): untouched when it fits, otherwise cut and
// suffixed with the ellipsis marker so the result fills the width.
func TruncateToWidth(text string, width int) string {
	return truncateWithEllipsis(text, width)
}

// FormatLineLeftRight lays out a left and a right fragment on one
// monospace line of the given width, truncating both when they collide.
func FormatLineLeftRight(left, right string, width int) string {
	padding := width - runeLen(left) - runeLen(right)
	if padding < 1 {
		available := width - 3
		if available < 2 {
			return TruncateToWidth(left+right, width)
		}
		leftChars := available * 6 / 10
		rightChars := available - leftChars
		left = TruncateToWidth(left, leftChars)
		right = TruncateToWidth(right, rightChars)
		padding = width - runeLen(left) - runeLen(right)
	}
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + right
}

// CenterText centers text within the given monospace width
func CenterText(text string, width int) string {
	if runeLen(text) >= width {
		return TruncateToWidth(text, width)
	}
	padding := (width - runeLen(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// SeparatorLine produces a full-width rule of the given character
func SeparatorLine(width int, char string) string {
	return strings.Repeat(char, width)
}

// PadLeft right-aligns text within a fixed-width sub-column
func PadLeft(text string, width int) string {
	if runeLen(text) >= width {
		return text
	}
	return strings.Repeat(" ", width-runeLen(text)) + text
}

// formatQuantity renders a quantity without trailing zeros
func formatQuantity(q decimal.Decimal) string {
	return q.String()
}

// formatAmount renders a money amount with two decimal places
func formatAmount(a decimal.Decimal) string {
	return a.StringFixed(2)
}

func runeLen(s string) int {
	return len([]rune(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
