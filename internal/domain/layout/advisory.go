package layout

import "fmt"

// AdvisoryCode identifies a non-fatal planning irregularity
type AdvisoryCode string

const (
	// AdvisoryMarginClamped means a requested margin was below the format
	// minimum and was silently raised
	AdvisoryMarginClamped AdvisoryCode = "MARGIN_CLAMPED"

	// AdvisoryFormatFallback means the requested format was substituted by
	// the nearest printer-supported format of the same classification
	AdvisoryFormatFallback AdvisoryCode = "FORMAT_FALLBACK"

	// AdvisoryQrDropped means one or more QR codes were dropped to keep the
	// remainder at a scannable size
	AdvisoryQrDropped AdvisoryCode = "QR_DROPPED"
)

// Advisory is a structured, non-fatal condition resolved automatically
// during planning. Advisories travel with the plan so the presentation
// layer can surface them; they are never raised as errors.
type Advisory struct {
	Code    AdvisoryCode `json:"code"`
	Message string       `json:"message"`

	// RequestedFormat / EffectiveFormat are set for FORMAT_FALLBACK
	RequestedFormat FormatID `json:"requested_format,omitempty"`
	EffectiveFormat FormatID `json:"effective_format,omitempty"`

	// DroppedCount is set for QR_DROPPED
	DroppedCount int `json:"dropped_count,omitempty"`
}

// NewMarginClampedAdvisory builds the advisory for a raised margin request
func NewMarginClampedAdvisory(requested, effective Margins) Advisory {
	return Advisory{
		Code: AdvisoryMarginClamped,
		Message: fmt.Sprintf("requested margins %.1f/%.1f/%.1f/%.1f mm were below the format minimum and raised to %.1f/%.1f/%.1f/%.1f mm",
			requested.Top, requested.Right, requested.Bottom, requested.Left,
			effective.Top, effective.Right, effective.Bottom, effective.Left),
	}
}

// NewFormatFallbackAdvisory builds the advisory for a format substitution
func NewFormatFallbackAdvisory(requested, effective FormatID) Advisory {
	return Advisory{
		Code:            AdvisoryFormatFallback,
		Message:         fmt.Sprintf("printer does not support %s, substituted nearest match %s", requested, effective),
		RequestedFormat: requested,
		EffectiveFormat: effective,
	}
}

// NewQrDroppedAdvisory builds the advisory for dropped QR codes
func NewQrDroppedAdvisory(dropped int) Advisory {
	return Advisory{
		Code:         AdvisoryQrDropped,
		Message:      fmt.Sprintf("%d QR code(s) dropped to keep the remainder scannable", dropped),
		DroppedCount: dropped,
	}
}
