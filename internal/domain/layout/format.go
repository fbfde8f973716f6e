package layout

// Classification distinguishes cut-sheet paper from continuous thermal stock
type Classification string

const (
	ClassPaper   Classification = "paper"
	ClassThermal Classification = "thermal"
)

// IsValid checks if the Classification is a valid value
func (c Classification) IsValid() bool {
	return c == ClassPaper || c == ClassThermal
}

// String returns the string representation of Classification
func (c Classification) String() string {
	return string(c)
}

// FormatID identifies a physical output format
type FormatID string

const (
	// A-series paper
	FormatA5 FormatID = "A5"
	FormatA4 FormatID = "A4"
	FormatA3 FormatID = "A3"

	// North American sizes
	FormatHalfLetter FormatID = "HALF_LETTER"
	FormatLetter     FormatID = "LETTER"
	FormatLegal      FormatID = "LEGAL"

	// Thermal roll widths
	FormatThermal57 FormatID = "THERMAL_57"
	FormatThermal58 FormatID = "THERMAL_58"
	FormatThermal76 FormatID = "THERMAL_76"
	FormatThermal80 FormatID = "THERMAL_80"

	// Pad/strip formats
	FormatQuarterLetterStrip FormatID = "QUARTER_LETTER_STRIP"
	FormatLongStrip          FormatID = "LONG_STRIP"
	FormatCashReceiptBook    FormatID = "CASH_RECEIPT_BOOK"
)

// String returns the string representation of FormatID
func (id FormatID) String() string {
	return string(id)
}

// FormatDescriptor is an immutable record describing a physical output
// target: its dimensions, classification, and capability limits. Descriptors
// are created once at registry initialization and never mutated.
type FormatDescriptor struct {
	ID             FormatID
	DisplayName    string
	Classification Classification
	WidthMM        float64
	HeightMM       float64 // 0 for continuous thermal stock
	MinMargins     Margins
	DefaultMargins Margins
	MaxQRCodes     int
	QRSizeMM       float64
	LogoMaxMM      float64
	FontScale      float64
	Paginates      bool
}

// IsThermal returns true for thermal roll formats
func (f FormatDescriptor) IsThermal() bool {
	return f.Classification == ClassThermal
}

// IsContinuous returns true when the format has no fixed height
func (f FormatDescriptor) IsContinuous() bool {
	return f.HeightMM == 0
}

// WidthInches returns the physical width in inches
func (f FormatDescriptor) WidthInches() float64 {
	return f.WidthMM / 25.4
}

// HeightInches returns the physical height in inches, 0 for continuous stock
func (f FormatDescriptor) HeightInches() float64 {
	return f.HeightMM / 25.4
}

// formatCatalog is the closed enumeration of supported physical formats.
// Margin classes follow the original sizing rules: large paper 15mm, A4 12mm,
// small paper 10mm, strips 5mm, thermal 3mm; minimums are 5mm for paper and
// 2mm for thermal.
var formatCatalog = []FormatDescriptor{
	{
		ID: FormatA5, DisplayName: "A5", Classification: ClassPaper,
		WidthMM: 148, HeightMM: 210,
		MinMargins: UniformMargins(5), DefaultMargins: UniformMargins(10),
		MaxQRCodes: 2, QRSizeMM: 20, LogoMaxMM: 25, FontScale: 0.85, Paginates: true,
	},
	{
		ID: FormatA4, DisplayName: "A4", Classification: ClassPaper,
		WidthMM: 210, HeightMM: 297,
		MinMargins: UniformMargins(5), DefaultMargins: UniformMargins(12),
		MaxQRCodes: 2, QRSizeMM: 20, LogoMaxMM: 25, FontScale: 1.0, Paginates: true,
	},
	{
		ID: FormatA3, DisplayName: "A3", Classification: ClassPaper,
		WidthMM: 297, HeightMM: 420,
		MinMargins: UniformMargins(5), DefaultMargins: UniformMargins(15),
		MaxQRCodes: 3, QRSizeMM: 25, LogoMaxMM: 30, FontScale: 1.2, Paginates: true,
	},
	{
		ID: FormatHalfLetter, DisplayName: "Half Letter", Classification: ClassPaper,
		WidthMM: 140, HeightMM: 216,
		MinMargins: UniformMargins(5), DefaultMargins: UniformMargins(10),
		MaxQRCodes: 2, QRSizeMM: 20, LogoMaxMM: 25, FontScale: 0.85, Paginates: true,
	},
	{
		ID: FormatLetter, DisplayName: "Letter", Classification: ClassPaper,
		WidthMM: 216, HeightMM: 279,
		MinMargins: UniformMargins(5), DefaultMargins: UniformMargins(15),
		MaxQRCodes: 3, QRSizeMM: 20, LogoMaxMM: 25, FontScale: 1.0, Paginates: true,
	},
	{
		ID: FormatLegal, DisplayName: "Legal", Classification: ClassPaper,
		WidthMM: 216, HeightMM: 356,
		MinMargins: UniformMargins(5), DefaultMargins: UniformMargins(15),
		MaxQRCodes: 3, QRSizeMM: 20, LogoMaxMM: 25, FontScale: 1.0, Paginates: true,
	},
	{
		ID: FormatThermal57, DisplayName: "57mm Thermal", Classification: ClassThermal,
		WidthMM: 57, HeightMM: 0,
		MinMargins: UniformMargins(2), DefaultMargins: UniformMargins(3),
		MaxQRCodes: 1, QRSizeMM: 15, LogoMaxMM: 15, FontScale: 0.7, Paginates: false,
	},
	{
		ID: FormatThermal58, DisplayName: "58mm Thermal", Classification: ClassThermal,
		WidthMM: 58, HeightMM: 0,
		MinMargins: UniformMargins(2), DefaultMargins: UniformMargins(3),
		MaxQRCodes: 1, QRSizeMM: 15, LogoMaxMM: 15, FontScale: 0.7, Paginates: false,
	},
	{
		ID: FormatThermal76, DisplayName: "76mm Thermal", Classification: ClassThermal,
		WidthMM: 76, HeightMM: 0,
		MinMargins: UniformMargins(2), DefaultMargins: UniformMargins(3),
		MaxQRCodes: 1, QRSizeMM: 15, LogoMaxMM: 15, FontScale: 0.75, Paginates: false,
	},
	{
		ID: FormatThermal80, DisplayName: "80mm Thermal", Classification: ClassThermal,
		WidthMM: 80, HeightMM: 0,
		MinMargins: UniformMargins(2), DefaultMargins: UniformMargins(3),
		MaxQRCodes: 1, QRSizeMM: 15, LogoMaxMM: 15, FontScale: 0.8, Paginates: false,
	},
	{
		ID: FormatQuarterLetterStrip, DisplayName: "Quarter Letter Strip", Classification: ClassPaper,
		WidthMM: 108, HeightMM: 216,
		MinMargins: UniformMargins(5), DefaultMargins: UniformMargins(5),
		MaxQRCodes: 1, QRSizeMM: 20, LogoMaxMM: 20, FontScale: 0.8, Paginates: true,
	},
	{
		ID: FormatLongStrip, DisplayName: "Long Strip", Classification: ClassPaper,
		WidthMM: 70, HeightMM: 194,
		MinMargins: UniformMargins(5), DefaultMargins: UniformMargins(5),
		MaxQRCodes: 1, QRSizeMM: 15, LogoMaxMM: 15, FontScale: 0.75, Paginates: true,
	},
	{
		ID: FormatCashReceiptBook, DisplayName: "Cash Receipt Book", Classification: ClassPaper,
		WidthMM: 109, HeightMM: 189,
		MinMargins: UniformMargins(5), DefaultMargins: UniformMargins(5),
		MaxQRCodes: 1, QRSizeMM: 20, LogoMaxMM: 20, FontScale: 0.8, Paginates: true,
	},
}
