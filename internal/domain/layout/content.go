package layout

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one ordered invoice line. Quantities and amounts use exact
// decimal arithmetic so carried subtotals never drift.
type LineItem struct {
	Name        string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// LineTotal returns quantity times unit price
func (i LineItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// QRPayload is one QR code to render. Payloads are ordered by priority:
// earlier entries survive capacity or scannability drops.
type QRPayload struct {
	Label string
	Data  string
}

// LogoRef references the business logo supplied by the caller
type LogoRef struct {
	URI      string
	WidthMM  float64
	HeightMM float64
}

// InvoiceMeta holds the invoice header fields that affect layout
type InvoiceMeta struct {
	Number   string
	IssuedAt time.Time
	Operator string
	Status   string
}

// Totals holds the invoice totals block
type Totals struct {
	Subtotal       decimal.Decimal
	TaxRatePercent decimal.Decimal
	TaxTotal       decimal.Decimal
	GrandTotal     decimal.Decimal
	CurrencySymbol string
}

// InvoiceContent is the read-only input to the layout engine: an ordered
// item sequence plus the surrounding business text, QR payloads, and an
// optional logo. The engine never mutates it.
type InvoiceContent struct {
	Meta         InvoiceMeta
	BusinessName string
	BusinessInfo []string
	FooterText   string
	Items        []LineItem
	QRCodes      []QRPayload
	Logo         *LogoRef
	Totals       Totals
}

// Fingerprint hashes the content together with the format and style ids and
// the resolved margins. It is the render cache key: any change to the
// underlying order, the target, or the effective margins produces a new
// fingerprint, so invalidation is implicit.
func (c *InvoiceContent) Fingerprint(format FormatID, style StyleID, margins Margins) string {
	h := sha256.New()
	write := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}

	write(string(format))
	write(string(style))
	for _, side := range []float64{margins.Top, margins.Right, margins.Bottom, margins.Left} {
		write(strconv.FormatFloat(side, 'f', -1, 64))
	}
	write(c.Meta.Number)
	write(c.Meta.IssuedAt.UTC().Format(time.RFC3339Nano))
	write(c.Meta.Operator)
	write(c.Meta.Status)
	write(c.BusinessName)
	for _, line := range c.BusinessInfo {
		write(line)
	}
	write(c.FooterText)
	write(strconv.Itoa(len(c.Items)))
	for _, item := range c.Items {
		write(item.Name)
		write(item.Description)
		write(item.Quantity.String())
		write(item.UnitPrice.String())
	}
	for _, qr := range c.QRCodes {
		write(qr.Label)
		write(qr.Data)
	}
	if c.Logo != nil {
		write(c.Logo.URI)
	}
	write(c.Totals.Subtotal.String())
	write(c.Totals.TaxRatePercent.String())
	write(c.Totals.TaxTotal.String())
	write(c.Totals.GrandTotal.String())
	write(c.Totals.CurrencySymbol)

	return hex.EncodeToString(h.Sum(nil))
}
