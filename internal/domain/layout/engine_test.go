package layout

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoice(itemCount int) *InvoiceContent {
	content := &InvoiceContent{
		Meta: InvoiceMeta{
			Number:   "INV-2026-0042",
			IssuedAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
			Operator: "alice",
		},
		BusinessName: "Corner Store",
		BusinessInfo: []string{"12 Main Street", "555-0100"},
		FooterText:   "No returns without receipt",
		Totals:       Totals{TaxRatePercent: decimal.NewFromInt(10), CurrencySymbol: "$"},
	}

	subtotal := decimal.Zero
	for i := 0; i < itemCount; i++ {
		item := LineItem{
			Name:      fmt.Sprintf("Item %03d", i+1),
			Quantity:  decimal.NewFromInt(int64(i%5 + 1)),
			UnitPrice: decimal.NewFromFloat(2.50),
		}
		content.Items = append(content.Items, item)
		subtotal = subtotal.Add(item.LineTotal())
	}
	content.Totals.Subtotal = subtotal
	content.Totals.TaxTotal = subtotal.Div(decimal.NewFromInt(10))
	content.Totals.GrandTotal = subtotal.Add(content.Totals.TaxTotal)
	return content
}

func testEngine(t *testing.T) (*Engine, *FormatRegistry, *StyleRegistry) {
	t.Helper()
	formats := NewFormatRegistry()
	return NewEngine(formats), formats, NewStyleRegistry()
}

func mustLookup(t *testing.T, formats *FormatRegistry, styles *StyleRegistry, f FormatID, s StyleID) (FormatDescriptor, StyleDescriptor) {
	t.Helper()
	format, err := formats.Lookup(f)
	require.NoError(t, err)
	style, err := styles.Lookup(s)
	require.NoError(t, err)
	return format, style
}

func TestPlanFiftyItemsOnA4FitsOnePage(t *testing.T) {
	engine, formats, styles := testEngine(t)
	format, style := mustLookup(t, formats, styles, FormatA4, StyleClassic)

	plan, err := engine.Plan(testInvoice(50), format, style, PlanOptions{})
	require.NoError(t, err)

	assert.Len(t, plan.Segments, 1)
	assert.Equal(t, 50, plan.ItemCount())
	assert.False(t, plan.Segments[0].Continued)
	assert.Empty(t, plan.Advisories)
}

func TestPlanTwoHundredItemsOnA4Paginates(t *testing.T) {
	engine, formats, styles := testEngine(t)
	format, style := mustLookup(t, formats, styles, FormatA4, StyleClassic)

	plan, err := engine.Plan(testInvoice(200), format, style, PlanOptions{})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(plan.Segments), 2)
	assert.Equal(t, 200, plan.ItemCount())

	// Item order is preserved across the segment boundaries.
	next := 0
	for _, seg := range plan.Segments {
		for _, row := range seg.Rows {
			assert.Equal(t, next, row.Index)
			next++
		}
	}

	// Every continuation opens with the sum of all prior line totals.
	carried := decimal.Zero
	for i, seg := range plan.Segments {
		if i == 0 {
			assert.False(t, seg.Continued)
			assert.True(t, seg.OpeningSubtotal.IsZero())
		} else {
			assert.True(t, seg.Continued)
			assert.True(t, seg.OpeningSubtotal.Equal(carried),
				"segment %d opening %s, want %s", seg.Number, seg.OpeningSubtotal, carried)
		}
		carried = carried.Add(seg.SegmentSubtotal())
	}
	assert.True(t, carried.Equal(testInvoice(200).Totals.Subtotal))
}

func TestPlanSegmentHeightStaysUnderThreshold(t *testing.T) {
	engine, formats, styles := testEngine(t)

	for _, formatID := range []FormatID{FormatA5, FormatA4, FormatLetter, FormatLongStrip} {
		t.Run(string(formatID), func(t *testing.T) {
			format, style := mustLookup(t, formats, styles, formatID, StyleClassic)

			plan, err := engine.Plan(testInvoice(120), format, style, PlanOptions{})
			require.NoError(t, err)

			budget := plan.Config.PrintableHeightMM() * plan.Config.PageBreakThreshold
			for _, seg := range plan.Segments {
				assert.LessOrEqual(t, seg.EstimatedHeightMM, budget+1e-9,
					"segment %d exceeds the page-break budget", seg.Number)
			}
		})
	}
}

func TestPlanMoreItemsNeverFewerSegments(t *testing.T) {
	engine, formats, styles := testEngine(t)
	format, style := mustLookup(t, formats, styles, FormatA4, StyleClassic)

	prev := 0
	for _, n := range []int{10, 50, 100, 200, 400} {
		plan, err := engine.Plan(testInvoice(n), format, style, PlanOptions{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(plan.Segments), prev, "items=%d", n)
		prev = len(plan.Segments)
	}
}

func TestPlanClampsMarginsWithAdvisory(t *testing.T) {
	engine, formats, styles := testEngine(t)
	format, style := mustLookup(t, formats, styles, FormatA4, StyleClassic)

	requested := UniformMargins(2) // below the 5mm paper minimum
	plan, err := engine.Plan(testInvoice(5), format, style, PlanOptions{Margins: &requested})
	require.NoError(t, err)

	assert.Equal(t, UniformMargins(5), plan.Config.Margins)
	require.Len(t, plan.Advisories, 1)
	assert.Equal(t, AdvisoryMarginClamped, plan.Advisories[0].Code)
}

func TestPlanHonorsPrinterMarginFloor(t *testing.T) {
	engine, formats, styles := testEngine(t)
	format, style := mustLookup(t, formats, styles, FormatA4, StyleClassic)

	printer := &PrinterProfile{
		ID:             "hw-1",
		Classification: ClassPaper,
		SupportedSizes: []FormatID{FormatA4},
		MinMargins:     UniformMargins(8),
	}
	requested := UniformMargins(6)
	plan, err := engine.Plan(testInvoice(5), format, style, PlanOptions{Printer: printer, Margins: &requested})
	require.NoError(t, err)

	assert.Equal(t, UniformMargins(8), plan.Config.Margins)
	require.Len(t, plan.Advisories, 1)
	assert.Equal(t, AdvisoryMarginClamped, plan.Advisories[0].Code)
}

func TestPlanFormatFallback(t *testing.T) {
	engine, formats, styles := testEngine(t)
	format, style := mustLookup(t, formats, styles, FormatA3, StyleClassic)

	printer := &PrinterProfile{
		ID:             "desk-1",
		Classification: ClassPaper,
		SupportedSizes: []FormatID{FormatA4, FormatA5},
	}
	plan, err := engine.Plan(testInvoice(5), format, style, PlanOptions{Printer: printer})
	require.NoError(t, err)

	assert.Equal(t, FormatA4, plan.Config.Format.ID)
	require.Len(t, plan.Advisories, 1)
	adv := plan.Advisories[0]
	assert.Equal(t, AdvisoryFormatFallback, adv.Code)
	assert.Equal(t, FormatA3, adv.RequestedFormat)
	assert.Equal(t, FormatA4, adv.EffectiveFormat)
}

func TestPlanRejectsClassificationMismatch(t *testing.T) {
	engine, formats, styles := testEngine(t)
	format, style := mustLookup(t, formats, styles, FormatA4, StyleClassic)

	printer := &PrinterProfile{
		ID:             "till-1",
		Classification: ClassThermal,
		SupportedSizes: []FormatID{FormatThermal58, FormatThermal80},
	}
	_, err := engine.Plan(testInvoice(5), format, style, PlanOptions{Printer: printer})
	assert.ErrorIs(t, err, ErrNoCompatibleFormat)
}

func TestPlanThermalSingleSegment(t *testing.T) {
	engine, formats, styles := testEngine(t)
	format, style := mustLookup(t, formats, styles, FormatThermal58, StyleClassic)

	content := testInvoice(8)
	content.Items[0].Name = strings.Repeat("Very Long Product Name ", 3)

	plan, err := engine.Plan(content, format, style, PlanOptions{})
	require.NoError(t, err)

	require.Len(t, plan.Segments, 1, "thermal stock never paginates")
	assert.Equal(t, 23, plan.Config.CharsPerLine)
	assert.False(t, plan.Config.Style.ShowBorders, "borders are forced off on thermal")
	assert.Greater(t, plan.TotalHeightMM, 0.0)

	rows := plan.Segments[0].Rows
	require.Len(t, rows, 8)
	assert.True(t, rows[0].Truncated)
	assert.Equal(t, 23, len([]rune(rows[0].Lines[0])))
	for _, row := range rows {
		require.Len(t, row.Lines, 1, "thermal items occupy exactly one name line")
		assert.LessOrEqual(t, len([]rune(row.Lines[0])), 23)
	}
}

func TestPlanThermalDropsExcessQRCodes(t *testing.T) {
	engine, formats, styles := testEngine(t)
	format, style := mustLookup(t, formats, styles, FormatThermal58, StyleClassic)

	content := testInvoice(3)
	content.QRCodes = []QRPayload{
		{Label: "pay", Data: "upi://pay?pa=store@bank"},
		{Label: "review", Data: "https://example.com/review"},
	}

	plan, err := engine.Plan(content, format, style, PlanOptions{})
	require.NoError(t, err)

	require.NotNil(t, plan.Segments[0].QRCodes)
	assert.Equal(t, 1, plan.Segments[0].QRCodes.Count)
	assert.Equal(t, "pay", plan.Segments[0].QRCodes.Payloads[0].Label, "priority order keeps the first payload")

	require.Len(t, plan.Advisories, 1)
	assert.Equal(t, AdvisoryQrDropped, plan.Advisories[0].Code)
	assert.Equal(t, 1, plan.Advisories[0].DroppedCount)
}

func TestPlanPaperQRGrid(t *testing.T) {
	engine, formats, styles := testEngine(t)
	format, style := mustLookup(t, formats, styles, FormatA4, StyleClassic)

	content := testInvoice(3)
	content.QRCodes = []QRPayload{
		{Label: "pay", Data: "upi://pay"},
		{Label: "review", Data: "https://example.com"},
	}

	plan, err := engine.Plan(content, format, style, PlanOptions{})
	require.NoError(t, err)

	last := plan.Segments[len(plan.Segments)-1]
	require.NotNil(t, last.QRCodes)
	assert.Equal(t, 2, last.QRCodes.Count)
	assert.GreaterOrEqual(t, last.QRCodes.SizeMM, 15.0, "codes never shrink below the scannable minimum")
	assert.Empty(t, plan.Advisories)
}

func TestPlanWrapsLongNamesOnPaper(t *testing.T) {
	engine, formats, styles := testEngine(t)
	format, style := mustLookup(t, formats, styles, FormatA4, StyleClassic)

	content := testInvoice(2)
	content.Items[1].Name = strings.Repeat("Organic Fair Trade Coffee Beans ", 8)

	plan, err := engine.Plan(content, format, style, PlanOptions{})
	require.NoError(t, err)

	row := plan.Segments[0].Rows[1]
	assert.Len(t, row.Lines, 3, "wrapped names cap at the per-item line budget")
	assert.True(t, row.Truncated)
	assert.Greater(t, row.HeightMM, plan.Segments[0].Rows[0].HeightMM)
}

func TestPlanIsDeterministic(t *testing.T) {
	engine, formats, styles := testEngine(t)
	format, style := mustLookup(t, formats, styles, FormatA4, StyleClassic)

	a, err := engine.Plan(testInvoice(75), format, style, PlanOptions{})
	require.NoError(t, err)
	b, err := engine.Plan(testInvoice(75), format, style, PlanOptions{})
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint, b.Fingerprint)
	assert.Equal(t, len(a.Segments), len(b.Segments))
	for i := range a.Segments {
		assert.Equal(t, len(a.Segments[i].Rows), len(b.Segments[i].Rows))
		assert.Equal(t, a.Segments[i].EstimatedHeightMM, b.Segments[i].EstimatedHeightMM)
	}
}

func TestPlanInsufficientFormat(t *testing.T) {
	engine, _, styles := testEngine(t)
	style, err := styles.Lookup(StyleClassic)
	require.NoError(t, err)

	degenerate := FormatDescriptor{
		ID: "CUSTOM_TINY", Classification: ClassPaper,
		WidthMM: 20, HeightMM: 20,
		MinMargins: UniformMargins(5), DefaultMargins: UniformMargins(5),
		FontScale: 1.0, Paginates: true,
	}
	_, err = engine.Plan(testInvoice(3), degenerate, style, PlanOptions{})
	assert.ErrorIs(t, err, ErrInsufficientFormat)
}
