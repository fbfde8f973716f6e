package layout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineItemTotal(t *testing.T) {
	item := LineItem{
		Quantity:  decimal.NewFromFloat(2.5),
		UnitPrice: decimal.NewFromFloat(3.99),
	}
	assert.True(t, item.LineTotal().Equal(decimal.NewFromFloat(9.975)))
}

func TestFingerprintStability(t *testing.T) {
	content := testInvoice(10)

	a := content.Fingerprint(FormatA4, StyleClassic, UniformMargins(12))
	b := content.Fingerprint(FormatA4, StyleClassic, UniformMargins(12))
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprintSensitivity(t *testing.T) {
	base := testInvoice(10).Fingerprint(FormatA4, StyleClassic, UniformMargins(12))

	t.Run("format changes the key", func(t *testing.T) {
		assert.NotEqual(t, base, testInvoice(10).Fingerprint(FormatA5, StyleClassic, UniformMargins(12)))
	})

	t.Run("style changes the key", func(t *testing.T) {
		assert.NotEqual(t, base, testInvoice(10).Fingerprint(FormatA4, StyleCompact, UniformMargins(12)))
	})

	t.Run("margins change the key", func(t *testing.T) {
		assert.NotEqual(t, base, testInvoice(10).Fingerprint(FormatA4, StyleClassic, UniformMargins(15)))
	})

	t.Run("item rename changes the key", func(t *testing.T) {
		changed := testInvoice(10)
		changed.Items[3].Name = "Renamed"
		assert.NotEqual(t, base, changed.Fingerprint(FormatA4, StyleClassic, UniformMargins(12)))
	})

	t.Run("price change changes the key", func(t *testing.T) {
		changed := testInvoice(10)
		changed.Items[0].UnitPrice = decimal.NewFromFloat(99.99)
		assert.NotEqual(t, base, changed.Fingerprint(FormatA4, StyleClassic, UniformMargins(12)))
	})

	t.Run("added qr changes the key", func(t *testing.T) {
		changed := testInvoice(10)
		changed.QRCodes = append(changed.QRCodes, QRPayload{Label: "pay", Data: "upi://pay"})
		assert.NotEqual(t, base, changed.Fingerprint(FormatA4, StyleClassic, UniformMargins(12)))
	})
}
