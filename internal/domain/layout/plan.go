package layout

import "github.com/shopspring/decimal"

// ItemRow is one line item placed in a segment, with its name already
// wrapped (paper) or truncated (thermal).
type ItemRow struct {
	Index       int // position in the input item sequence
	Lines       []string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	Truncated   bool
	HeightMM    float64
}

// QRPlacement describes the resolved QR grid for a segment
type QRPlacement struct {
	Count     int
	PerRow    int
	SizeMM    float64
	SpacingMM float64
	Payloads  []QRPayload
}

// LogoPlacement describes the resolved logo box
type LogoPlacement struct {
	WidthMM  float64
	HeightMM float64
	URI      string
}

// Segment is one page of a paper plan, or the single continuous region of
// a thermal plan.
type Segment struct {
	Number    int
	Continued bool
	// OpeningSubtotal is the running subtotal carried into this segment,
	// equal to the sum of all prior segments' line totals.
	OpeningSubtotal decimal.Decimal
	Rows            []ItemRow
	QRCodes         *QRPlacement
	Logo            *LogoPlacement
	// EstimatedHeightMM is the accumulated content height used for the
	// pagination decision.
	EstimatedHeightMM float64
}

// SegmentSubtotal returns the sum of this segment's line totals
func (s Segment) SegmentSubtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, row := range s.Rows {
		sum = sum.Add(row.LineTotal)
	}
	return sum
}

// LayoutPlan is the fully resolved, ready-to-draw description of one
// invoice's presentation. It is the unit cached by the render cache.
type LayoutPlan struct {
	Fingerprint string
	Config      LayoutConfig
	Segments    []Segment
	Advisories  []Advisory
	// TotalHeightMM is the continuous-feed height for thermal plans,
	// 0 for paper plans.
	TotalHeightMM float64
}

// ItemCount returns the number of item rows across all segments
func (p *LayoutPlan) ItemCount() int {
	n := 0
	for _, seg := range p.Segments {
		n += len(seg.Rows)
	}
	return n
}
