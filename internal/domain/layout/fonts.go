package layout

import "math"

// Font family names understood by every drawing surface we target
const (
	FontMono         = "Courier"
	FontProportional = "Helvetica"
)

// FontPlan is the resolved font configuration for a layout. Sizes are in
// points, already scaled for the target format.
type FontPlan struct {
	BaseSize   int
	TitleSize  int
	HeaderSize int
	ItemSize   int
	FooterSize int
	Monospace  bool
	Family     string
}

// baseFontPlan returns the unscaled font sizes shared by every format
func baseFontPlan() FontPlan {
	return FontPlan{
		BaseSize:   10,
		TitleSize:  16,
		HeaderSize: 12,
		ItemSize:   9,
		FooterSize: 8,
		Monospace:  false,
		Family:     FontProportional,
	}
}

// Scaled returns a copy with every size multiplied by factor, rounded down
// the way the original tables did.
func (p FontPlan) Scaled(factor float64) FontPlan {
	scale := func(size int) int {
		return int(math.Floor(float64(size) * factor))
	}
	p.BaseSize = scale(p.BaseSize)
	p.TitleSize = scale(p.TitleSize)
	p.HeaderSize = scale(p.HeaderSize)
	p.ItemSize = scale(p.ItemSize)
	p.FooterSize = scale(p.FooterSize)
	return p
}

// FontPlanFor resolves the font plan for a format: base sizes scaled by the
// format's scale factor, monospace for thermal targets.
func FontPlanFor(format FormatDescriptor) FontPlan {
	plan := baseFontPlan().Scaled(format.FontScale)
	if format.IsThermal() {
		plan.Monospace = true
		plan.Family = FontMono
	}
	return plan
}
