package printing

import (
	"time"

	"github.com/furqanmax/simplepos-printing/internal/domain/layout"
	"github.com/shopspring/decimal"
)

// MarginsDTO represents page margins in millimeters
type MarginsDTO struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// LineItemDTO is one invoice line in a plan request
type LineItemDTO struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// QRPayloadDTO is one QR code in priority order
type QRPayloadDTO struct {
	Label string `json:"label"`
	Data  string `json:"data" binding:"required"`
}

// LogoDTO references the business logo
type LogoDTO struct {
	URI      string  `json:"uri" binding:"required"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
}

// TotalsDTO carries the invoice totals block; zero values are derived from
// the line items.
type TotalsDTO struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
	TaxTotal       decimal.Decimal `json:"tax_total"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	CurrencySymbol string          `json:"currency_symbol"`
}

// InvoiceContentDTO is the read-only invoice input
type InvoiceContentDTO struct {
	Number       string         `json:"number" binding:"required"`
	IssuedAt     time.Time      `json:"issued_at"`
	Operator     string         `json:"operator"`
	Status       string         `json:"status"`
	BusinessName string         `json:"business_name"`
	BusinessInfo []string       `json:"business_info"`
	FooterText   string         `json:"footer_text"`
	Items        []LineItemDTO  `json:"items" binding:"required,min=1,dive"`
	QRCodes      []QRPayloadDTO `json:"qr_codes" binding:"dive"`
	Logo         *LogoDTO       `json:"logo"`
	Totals       *TotalsDTO     `json:"totals"`
}

// PrinterProfileDTO describes the target printer
type PrinterProfileDTO struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Classification string      `json:"classification" binding:"required,oneof=paper thermal"`
	SupportedSizes []string    `json:"supported_sizes" binding:"required,min=1"`
	MinMargins     *MarginsDTO `json:"min_margins"`
}

// PlanLayoutRequest asks for a layout plan
type PlanLayoutRequest struct {
	FormatID string             `json:"format_id"`
	StyleID  string             `json:"style_id"`
	Margins  *MarginsDTO        `json:"margins"`
	Printer  *PrinterProfileDTO `json:"printer"`
	Content  InvoiceContentDTO  `json:"content" binding:"required"`
}

// ResolveFormatRequest asks which format a printer will actually produce
type ResolveFormatRequest struct {
	FormatID string            `json:"format_id" binding:"required"`
	Printer  PrinterProfileDTO `json:"printer" binding:"required"`
}

// AdvisoryDTO is a non-fatal planning irregularity surfaced to the user
type AdvisoryDTO struct {
	Code            string `json:"code"`
	Message         string `json:"message"`
	RequestedFormat string `json:"requested_format,omitempty"`
	EffectiveFormat string `json:"effective_format,omitempty"`
	DroppedCount    int    `json:"dropped_count,omitempty"`
}

// ItemRowDTO is one placed row in a segment
type ItemRowDTO struct {
	Index     int      `json:"index"`
	Lines     []string `json:"lines"`
	Quantity  string   `json:"quantity"`
	UnitPrice string   `json:"unit_price"`
	LineTotal string   `json:"line_total"`
	Truncated bool     `json:"truncated"`
}

// SegmentDTO is one page (paper) or the continuous region (thermal)
type SegmentDTO struct {
	Number            int          `json:"number"`
	Continued         bool         `json:"continued"`
	OpeningSubtotal   string       `json:"opening_subtotal"`
	Rows              []ItemRowDTO `json:"rows"`
	QRCount           int          `json:"qr_count"`
	EstimatedHeightMM float64      `json:"estimated_height_mm"`
}

// PlanLayoutResponse is the resolved layout plan
type PlanLayoutResponse struct {
	Fingerprint     string        `json:"fingerprint"`
	FormatID        string        `json:"format_id"`
	StyleID         string        `json:"style_id"`
	Margins         MarginsDTO    `json:"margins"`
	CharsPerLine    int           `json:"chars_per_line,omitempty"`
	FontFamily      string        `json:"font_family"`
	FontBaseSize    int           `json:"font_base_size"`
	Monospace       bool          `json:"monospace"`
	Segments        []SegmentDTO  `json:"segments"`
	TotalHeightMM   float64       `json:"total_height_mm,omitempty"`
	Advisories      []AdvisoryDTO `json:"advisories"`
	ServedFromCache bool          `json:"served_from_cache"`
}

// ResolveFormatResponse reports the effective format for a printer
type ResolveFormatResponse struct {
	RequestedID string `json:"requested_id"`
	EffectiveID string `json:"effective_id"`
	FellBack    bool   `json:"fell_back"`
}

// FormatResponse describes one catalog format
type FormatResponse struct {
	ID             string  `json:"id"`
	DisplayName    string  `json:"display_name"`
	Classification string  `json:"classification"`
	WidthMM        float64 `json:"width_mm"`
	HeightMM       float64 `json:"height_mm"`
	MaxQRCodes     int     `json:"max_qr_codes"`
	Paginates      bool    `json:"paginates"`
}

// StyleResponse describes one catalog style
type StyleResponse struct {
	ID              string `json:"id"`
	DisplayName     string `json:"display_name"`
	ShowBorders     bool   `json:"show_borders"`
	ShowDescription bool   `json:"show_description"`
}

// toDomainContent maps the content DTO onto the domain input, deriving
// absent totals from the line items.
func toDomainContent(dto InvoiceContentDTO) *layout.InvoiceContent {
	content := &layout.InvoiceContent{
		Meta: layout.InvoiceMeta{
			Number:   dto.Number,
			IssuedAt: dto.IssuedAt,
			Operator: dto.Operator,
			Status:   dto.Status,
		},
		BusinessName: dto.BusinessName,
		BusinessInfo: dto.BusinessInfo,
		FooterText:   dto.FooterText,
	}

	for _, item := range dto.Items {
		content.Items = append(content.Items, layout.LineItem{
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	for _, qr := range dto.QRCodes {
		content.QRCodes = append(content.QRCodes, layout.QRPayload{Label: qr.Label, Data: qr.Data})
	}
	if dto.Logo != nil {
		content.Logo = &layout.LogoRef{URI: dto.Logo.URI, WidthMM: dto.Logo.WidthMM, HeightMM: dto.Logo.HeightMM}
	}

	if dto.Totals != nil {
		content.Totals = layout.Totals{
			Subtotal:       dto.Totals.Subtotal,
			TaxRatePercent: dto.Totals.TaxRatePercent,
			TaxTotal:       dto.Totals.TaxTotal,
			GrandTotal:     dto.Totals.GrandTotal,
			CurrencySymbol: dto.Totals.CurrencySymbol,
		}
	}
	if content.Totals.Subtotal.IsZero() {
		subtotal := decimal.Zero
		for _, item := range content.Items {
			subtotal = subtotal.Add(item.LineTotal())
		}
		content.Totals.Subtotal = subtotal
		content.Totals.TaxTotal = subtotal.Mul(content.Totals.TaxRatePercent).Div(decimal.NewFromInt(100))
		content.Totals.GrandTotal = subtotal.Add(content.Totals.TaxTotal)
	}
	return content
}

// toDomainPrinter maps the printer DTO onto the domain profile
func toDomainPrinter(dto *PrinterProfileDTO) *layout.PrinterProfile {
	if dto == nil {
		return nil
	}
	profile := &layout.PrinterProfile{
		ID:             dto.ID,
		Name:           dto.Name,
		Classification: layout.Classification(dto.Classification),
	}
	for _, id := range dto.SupportedSizes {
		profile.SupportedSizes = append(profile.SupportedSizes, layout.FormatID(id))
	}
	if dto.MinMargins != nil {
		profile.MinMargins = toDomainMargins(*dto.MinMargins)
	}
	return profile
}

// toDomainMargins maps the margins DTO onto the domain value object
func toDomainMargins(dto MarginsDTO) layout.Margins {
	return layout.Margins{Top: dto.Top, Right: dto.Right, Bottom: dto.Bottom, Left: dto.Left}
}

// toPlanResponse maps a layout plan and its request-scoped advisories onto
// the response DTO.
func toPlanResponse(plan *layout.LayoutPlan, advisories []layout.Advisory, fromCache bool) *PlanLayoutResponse {
	resp := &PlanLayoutResponse{
		Fingerprint:  plan.Fingerprint,
		FormatID:     plan.Config.Format.ID.String(),
		StyleID:      plan.Config.Style.ID.String(),
		CharsPerLine: plan.Config.CharsPerLine,
		Margins: MarginsDTO{
			Top:    plan.Config.Margins.Top,
			Right:  plan.Config.Margins.Right,
			Bottom: plan.Config.Margins.Bottom,
			Left:   plan.Config.Margins.Left,
		},
		FontFamily:      plan.Config.Fonts.Family,
		FontBaseSize:    plan.Config.Fonts.BaseSize,
		Monospace:       plan.Config.Fonts.Monospace,
		TotalHeightMM:   plan.TotalHeightMM,
		Advisories:      []AdvisoryDTO{},
		ServedFromCache: fromCache,
	}

	for _, adv := range advisories {
		resp.Advisories = append(resp.Advisories, AdvisoryDTO{
			Code:            string(adv.Code),
			Message:         adv.Message,
			RequestedFormat: adv.RequestedFormat.String(),
			EffectiveFormat: adv.EffectiveFormat.String(),
			DroppedCount:    adv.DroppedCount,
		})
	}

	for _, seg := range plan.Segments {
		segDTO := SegmentDTO{
			Number:            seg.Number,
			Continued:         seg.Continued,
			OpeningSubtotal:   seg.OpeningSubtotal.StringFixed(2),
			EstimatedHeightMM: seg.EstimatedHeightMM,
		}
		if seg.QRCodes != nil {
			segDTO.QRCount = seg.QRCodes.Count
		}
		for _, row := range seg.Rows {
			segDTO.Rows = append(segDTO.Rows, ItemRowDTO{
				Index:     row.Index,
				Lines:     row.Lines,
				Quantity:  row.Quantity.String(),
				UnitPrice: row.UnitPrice.StringFixed(2),
				LineTotal: row.LineTotal.StringFixed(2),
				Truncated: row.Truncated,
			})
		}
		resp.Segments = append(resp.Segments, segDTO)
	}
	return resp
}
