package layout

// Margins represents page margins in millimeters
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// UniformMargins creates Margins with the same value on every side
func UniformMargins(mm float64) Margins {
	return Margins{Top: mm, Right: mm, Bottom: mm, Left: mm}
}

// HorizontalTotal returns left + right
func (m Margins) HorizontalTotal() float64 {
	return m.Left + m.Right
}

// VerticalTotal returns top + bottom
func (m Margins) VerticalTotal() float64 {
	return m.Top + m.Bottom
}

// IsZero returns true if all margins are zero
func (m Margins) IsZero() bool {
	return m.Top == 0 && m.Right == 0 && m.Bottom == 0 && m.Left == 0
}

// Equals checks if two Margins are equal
func (m Margins) Equals(other Margins) bool {
	return m.Top == other.Top &&
		m.Right == other.Right &&
		m.Bottom == other.Bottom &&
		m.Left == other.Left
}

// ClampedTo raises every side to at least the corresponding minimum.
// The second return value reports whether any side was raised.
func (m Margins) ClampedTo(min Margins) (Margins, bool) {
	clamped := m
	raised := false
	if clamped.Top < min.Top {
		clamped.Top = min.Top
		raised = true
	}
	if clamped.Right < min.Right {
		clamped.Right = min.Right
		raised = true
	}
	if clamped.Bottom < min.Bottom {
		clamped.Bottom = min.Bottom
		raised = true
	}
	if clamped.Left < min.Left {
		clamped.Left = min.Left
		raised = true
	}
	return clamped, raised
}

// EffectiveMargins resolves the margins a plan will use on the format.
// Thermal stock is forced to the format minimum. Paper takes the requested
// margins, or the format default when the caller supplies none, clamped to
// the format minimum raised by any printer hardware floor. The second
// return reports whether clamping raised a side.
func EffectiveMargins(format FormatDescriptor, printer *PrinterProfile, requested *Margins) (Margins, bool) {
	if format.IsThermal() {
		return format.MinMargins, false
	}
	req := format.DefaultMargins
	if requested != nil {
		req = *requested
	}
	min := format.MinMargins
	if printer != nil {
		min = min.Max(printer.MinMargins)
	}
	return req.ClampedTo(min)
}

// Max returns the side-wise maximum of two margin sets
func (m Margins) Max(other Margins) Margins {
	out := m
	if other.Top > out.Top {
		out.Top = other.Top
	}
	if other.Right > out.Right {
		out.Right = other.Right
	}
	if other.Bottom > out.Bottom {
		out.Bottom = other.Bottom
	}
	if other.Left > out.Left {
		out.Left = other.Left
	}
	return out
}
