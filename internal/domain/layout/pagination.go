package layout

import "github.com/shopspring/decimal"

// paginate packs already-wrapped item rows into page segments using the
// page-break threshold. It is a pure function: the same rows and config
// always produce the same segments.
//
// The first segment carries the business header, the invoice info block,
// the optional logo, and the table header; continuation segments carry a
// reduced "Continued..." header plus the table header. Each segment's
// accumulated height never exceeds threshold * printable height; the
// reserved remainder holds the totals and footer block. The running
// subtotal of all prior segments is carried into each continuation
// segment as its opening balance.
//
// Returns ErrInsufficientFormat when even a single row cannot fit an
// otherwise empty segment.
func paginate(rows []ItemRow, cfg LayoutConfig, logo *LogoPlacement, qr *QRPlacement) ([]Segment, error) {
	budget := cfg.PrintableHeightMM() * cfg.PageBreakThreshold
	lineH := cfg.LineHeightMM()

	firstHead := headerBlockMM + invoiceInfoBlockMM + lineH
	if logo != nil {
		firstHead += logo.HeightMM + logoSpacingMM
	}
	contHead := continuationHeadMM + lineH

	if firstHead >= budget {
		return nil, ErrInsufficientFormat
	}

	var segments []Segment
	carried := decimal.Zero

	current := Segment{Number: 1, OpeningSubtotal: carried, Logo: logo}
	height := firstHead

	closeSegment := func() {
		current.EstimatedHeightMM = height
		carried = carried.Add(current.SegmentSubtotal())
		segments = append(segments, current)
		current = Segment{
			Number:          len(segments) + 1,
			Continued:       true,
			OpeningSubtotal: carried,
		}
		height = contHead
	}

	for _, row := range rows {
		if height+row.HeightMM > budget {
			if len(current.Rows) == 0 {
				// Even an empty segment cannot hold this row.
				return nil, ErrInsufficientFormat
			}
			closeSegment()
			if height+row.HeightMM > budget {
				return nil, ErrInsufficientFormat
			}
		}
		current.Rows = append(current.Rows, row)
		height += row.HeightMM
	}

	// The QR grid goes on the final segment, spilling onto a fresh one
	// when it no longer fits under the threshold.
	if qr != nil && qr.Count > 0 {
		qrHeight := qrBlockHeightMM(qr)
		if height+qrHeight > budget && len(current.Rows) > 0 {
			closeSegment()
		}
		if height+qrHeight > budget {
			// Even an otherwise empty segment cannot hold the grid.
			return nil, ErrInsufficientFormat
		}
		current.QRCodes = qr
		height += qrHeight
	}

	current.EstimatedHeightMM = height
	segments = append(segments, current)
	return segments, nil
}

// qrBlockHeightMM returns the height of the rendered QR grid
func qrBlockHeightMM(qr *QRPlacement) float64 {
	if qr.Count == 0 || qr.PerRow == 0 {
		return 0
	}
	gridRows := (qr.Count + qr.PerRow - 1) / qr.PerRow
	return float64(gridRows)*(qr.SizeMM+qr.SpacingMM) + qr.SpacingMM
}
