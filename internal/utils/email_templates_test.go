package utils

import (
	"strings"
	"testing"
	"time"

	"audiophile_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$12.50", FormatPrice(1250))
	assert.Equal(t, "$0.00", FormatPrice(0))
	assert.Equal(t, "$29.99", FormatPrice(2999))
	assert.Equal(t, "$0.07", FormatPrice(7))
}

func sampleOrder() models.Order {
	return models.Order{
		OrderID: "ORD-1700000000000-abc123def",
		Customer: models.Customer{
			Name:  "Alexei Ward",
			Email: "alexei@mail.com",
			Phone: "+1 202-555-0136",
		},
		Shipping: models.ShippingAddress{
			Address: "1137 Williams Avenue",
			City:    "New York",
			Country: "United States",
			Zip:     "10001",
		},
		Items: []models.CartItem{
			{ProductID: "1", Name: "XX99 Mark II Headphones", Price: 2999, Quantity: 2},
			{ProductID: "6", Name: "YX1 Wireless Earphones", Price: 599, Quantity: 1},
		},
		Totals: models.CartTotals{
			Subtotal:   6597,
			Shipping:   50,
			VAT:        1319,
			GrandTotal: 7966,
		},
		PaymentMethod: models.PaymentEMoney,
		Timestamp:     time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC).UnixMilli(),
		Status:        models.OrderStatusPending,
	}
}

func TestGenerateOrderConfirmationHTML(t *testing.T) {
	order := sampleOrder()
	html := GenerateOrderConfirmationHTML(order, "")

	assert.Contains(t, html, order.OrderID)
	assert.Contains(t, html, "XX99 Mark II Headphones")
	assert.Contains(t, html, "YX1 Wireless Earphones")
	assert.Contains(t, html, "$65.97") // sous-total
	assert.Contains(t, html, "$79.66") // total
	assert.Contains(t, html, "1137 Williams Avenue")
	assert.Contains(t, html, "New York, 10001")
	assert.Contains(t, html, "United States")
	assert.Contains(t, html, "#order-"+order.OrderID)
	assert.NotContains(t, html, "Scan to track", "pas de bloc QR sans QR")
}

func TestGenerateOrderConfirmationHTMLEmbedsQR(t *testing.T) {
	order := sampleOrder()

	qr, err := GenerateOrderQR(order.OrderID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))

	html := GenerateOrderConfirmationHTML(order, qr)
	assert.Contains(t, html, qr)
	assert.Contains(t, html, "Scan to track")
}
