package layout

// PrinterProfile describes a configured printer: its classification, the
// format ids it can physically produce, and any margin floor the hardware
// enforces. Profiles are supplied by the printer-configuration store and
// are read-only to this subsystem.
type PrinterProfile struct {
	ID             string
	Name           string
	Classification Classification
	SupportedSizes []FormatID
	// MinMargins is the hardware margin floor; zero means no cap beyond
	// the format's own minimum.
	MinMargins Margins
	IsDefault  bool
}

// Supports reports whether the printer can produce the given format
func (p PrinterProfile) Supports(id FormatID) bool {
	for _, s := range p.SupportedSizes {
		if s == id {
			return true
		}
	}
	return false
}

// CapabilityResolver maps a requested format against a printer's supported
// set, substituting the nearest same-classification match when needed.
type CapabilityResolver struct {
	formats *FormatRegistry
}

// NewCapabilityResolver creates a resolver over the given format registry
func NewCapabilityResolver(formats *FormatRegistry) *CapabilityResolver {
	return &CapabilityResolver{formats: formats}
}

// Resolve returns the effective format for the request. If the printer
// supports the requested format it is returned unchanged. Otherwise the
// nearest supported format of the same classification is selected; a
// classification mismatch is a hard ErrNoCompatibleFormat, never a
// cross-classification substitute.
func (r *CapabilityResolver) Resolve(requested FormatDescriptor, printer PrinterProfile) (effective FormatDescriptor, fellBack bool, err error) {
	if printer.Supports(requested.ID) {
		return requested, false, nil
	}

	best, found := r.formats.Nearest(requested, printer.SupportedSizes)
	if !found {
		return FormatDescriptor{}, false, ErrNoCompatibleFormat
	}
	return best, true, nil
}
