package layout

// Geometry constants shared by the fitting computations
const (
	// ptToMM converts a font size in points to millimeters
	ptToMM = 0.3528

	// lineLeading is the multiplier applied to the font height for one
	// rendered text line
	lineLeading = 1.1

	// avgCharWidthRatio approximates the average glyph advance of the
	// proportional font as a fraction of the font size
	avgCharWidthRatio = 0.5

	// thermalCharPitchMM is the fixed monospace character pitch on thermal
	// heads at the base font size
	thermalCharPitchMM = 2.5

	// pageBreakThreshold is the fraction of printable height a segment may
	// fill; the remainder is reserved for the totals and footer block
	pageBreakThreshold = 0.85

	// minScannableQRMM is the smallest QR edge a scanner can be expected
	// to read; codes are dropped rather than shrunk below this
	minScannableQRMM = 15.0

	// defaultMaxLinesPerItem caps wrapped item names on paper formats
	defaultMaxLinesPerItem = 3

	// headerBlockMM / continuationHeaderMM / totalsBlockMM / footerBlockMM
	// are the fixed height estimates for the non-item regions
	headerBlockMM       = 30.0
	continuationHeadMM  = 15.0
	invoiceInfoBlockMM  = 20.0
	totalsBlockMM       = 20.0
	footerBlockMM       = 15.0
	logoSpacingMM       = 5.0
	qrSpacingMM         = 5.0
	thermalQRSpacingMM  = 2.0
	thermalLineHeightMM = 4.0
)

// LayoutConfig is the fully resolved per-invoice layout: concrete margins,
// font plan, character budgets, and fitting policy. It is constructed fresh
// for every plan request and never persisted by this subsystem.
type LayoutConfig struct {
	Format FormatDescriptor
	Style  StyleDescriptor

	Margins      Margins
	Fonts        FontPlan
	CharsPerLine int // thermal only, 0 for paper

	MaxQRCodes int
	QRSizeMM   float64
	LogoMaxMM  float64

	WrapItemNames   bool
	MaxLinesPerItem int

	PageBreakThreshold float64
}

// PrintableWidthMM returns the physical width minus horizontal margins
func (c LayoutConfig) PrintableWidthMM() float64 {
	return c.Format.WidthMM - c.Margins.HorizontalTotal()
}

// PrintableHeightMM returns the physical height minus vertical margins,
// 0 for continuous stock.
func (c LayoutConfig) PrintableHeightMM() float64 {
	if c.Format.IsContinuous() {
		return 0
	}
	return c.Format.HeightMM - c.Margins.VerticalTotal()
}

// LineHeightMM returns the height of one rendered item text line
func (c LayoutConfig) LineHeightMM() float64 {
	if c.Format.IsThermal() {
		return thermalLineHeightMM
	}
	return float64(c.Fonts.ItemSize) * ptToMM * lineLeading
}

// ItemColumnChars returns the character capacity of the item-name column on
// paper formats at the resolved font size.
func (c LayoutConfig) ItemColumnChars() int {
	charWidth := float64(c.Fonts.ItemSize) * avgCharWidthRatio * ptToMM
	if charWidth <= 0 {
		return 0
	}
	return int(c.PrintableWidthMM() * c.Style.Columns.Item / charWidth)
}
