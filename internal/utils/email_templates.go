package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"audiophile_back_end/internal/models"
)

// FormatPrice convertit des unités mineures en montant affichable
func FormatPrice(minor int) string {
	return fmt.Sprintf("$%.2f", float64(minor)/100)
}

func siteURL() string {
	if url := os.Getenv("SITE_URL"); url != "" {
		return url
	}
	return "http://localhost:3000"
}

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
// envoyé au client. Contenu en anglais, c'est la langue du storefront.
func GenerateOrderConfirmationHTML(order models.Order, qrBase64 string) string {
	orderDate := time.UnixMilli(order.Timestamp).Format("Monday, January 2, 2006")

	var itemsHTML strings.Builder
	for _, item := range order.Items {
		itemsHTML.WriteString(fmt.Sprintf(`
      <tr style="border-bottom: 1px solid #eee;">
        <td style="padding: 15px 0; vertical-align: top;">
          <div style="font-weight: 600; margin-bottom: 5px;">%s</div>
          <div style="color: #666; font-size: 14px;">%s x %d</div>
        </td>
        <td style="padding: 15px 0; text-align: right; vertical-align: top;">
          <div style="font-weight: 600;">%s</div>
        </td>
      </tr>`, item.Name, FormatPrice(item.Price), item.Quantity, FormatPrice(item.Price*item.Quantity)))
	}

	qrHTML := ""
	if qrBase64 != "" {
		qrHTML = fmt.Sprintf(`
            <div style="text-align: center; margin: 20px 0;">
              <img src="%s" alt="Order QR" width="128" height="128" style="border: 1px solid #eee; border-radius: 8px;" />
              <div style="color: #666; font-size: 12px; margin-top: 8px;">Scan to track your order</div>
            </div>`, qrBase64)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Order Confirmation - Audiophile</title>
  </head>
  <body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; background: #ffffff;">
      <div style="background: #D87D4A; padding: 40px 30px; text-align: center;">
        <h1 style="margin: 0; color: white; font-size: 32px; font-weight: bold; text-transform: uppercase; letter-spacing: 1px;">
          Audiophile
        </h1>
      </div>

      <div style="padding: 40px 30px; text-align: center; background: #f9f9f9;">
        <h2 style="margin: 0 0 10px 0; font-size: 28px; text-transform: uppercase;">Thank You!</h2>
        <p style="margin: 0; color: #666; font-size: 16px;">Your order has been confirmed and is being processed.</p>
      </div>

      <div style="padding: 30px;">
        <div style="border: 1px solid #eee; border-radius: 8px; overflow: hidden; margin-bottom: 30px;">
          <div style="background: #f9f9f9; padding: 20px; border-bottom: 1px solid #eee;">
            <h3 style="margin: 0 0 15px 0; font-size: 18px; text-transform: uppercase;">Order Details</h3>
            <div>
              <div style="font-size: 12px; color: #666; text-transform: uppercase; margin-bottom: 5px;">Order Number</div>
              <div style="font-weight: 600;">%s</div>
            </div>
            <div style="margin-top: 10px;">
              <div style="font-size: 12px; color: #666; text-transform: uppercase; margin-bottom: 5px;">Order Date</div>
              <div style="font-weight: 600;">%s</div>
            </div>
          </div>

          <div style="padding: 20px;">
            <h4 style="margin: 0 0 20px 0; font-size: 16px; text-transform: uppercase;">Order Items</h4>
            <table style="width: 100%%; border-collapse: collapse;">%s
            </table>
          </div>

          <div style="background: #f9f9f9; padding: 20px; border-top: 1px solid #eee;">
            <table style="width: 100%%; border-collapse: collapse;">
              <tr>
                <td style="padding: 5px 0; color: #666; text-transform: uppercase; font-size: 14px;">Subtotal</td>
                <td style="padding: 5px 0; text-align: right;">%s</td>
              </tr>
              <tr>
                <td style="padding: 5px 0; color: #666; text-transform: uppercase; font-size: 14px;">Shipping</td>
                <td style="padding: 5px 0; text-align: right;">%s</td>
              </tr>
              <tr>
                <td style="padding: 5px 0; color: #666; text-transform: uppercase; font-size: 14px;">VAT (Included)</td>
                <td style="padding: 5px 0; text-align: right;">%s</td>
              </tr>
              <tr style="border-top: 2px solid #D87D4A; font-weight: bold; font-size: 18px;">
                <td style="padding: 15px 0 5px 0; text-transform: uppercase;">Grand Total</td>
                <td style="padding: 15px 0 5px 0; text-align: right; color: #D87D4A;">%s</td>
              </tr>
            </table>
          </div>
        </div>

        <div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin-bottom: 30px;">
          <h4 style="margin: 0 0 15px 0; font-size: 16px; text-transform: uppercase;">Shipping Address</h4>
          <div style="color: #666;">
            %s<br>
            %s, %s<br>
            %s
          </div>
        </div>

        <div style="background: #f9f9f9; padding: 20px; border-radius: 8px;">
          <h4 style="margin: 0 0 15px 0; font-size: 16px; text-transform: uppercase;">What's Next?</h4>
          <ul style="margin: 0; padding-left: 20px; color: #666;">
            <li style="margin-bottom: 8px;">Your order will be shipped within 2-3 business days</li>
            <li style="margin-bottom: 8px;">You'll receive a tracking number once your order ships</li>
            <li style="margin-bottom: 8px;">Contact us if you have any questions about your order</li>
          </ul>
        </div>
%s
        <div style="text-align: center; margin: 30px 0;">
          <a href="%s#order-%s"
             style="display: inline-block; background: #D87D4A; color: white; padding: 15px 30px; text-decoration: none; border-radius: 8px; font-weight: bold; text-transform: uppercase; letter-spacing: 1px;">
            View Your Order
          </a>
        </div>
      </div>

      <div style="background: #101010; color: white; padding: 30px; text-align: center;">
        <h3 style="margin: 0 0 15px 0; text-transform: uppercase; letter-spacing: 1px;">Audiophile</h3>
        <p style="margin: 0; color: #ccc; font-size: 14px;">
          Thank you for choosing Audiophile for your audio needs.
        </p>
      </div>
    </div>
  </body>
</html>`,
		order.OrderID, orderDate, itemsHTML.String(),
		FormatPrice(order.Totals.Subtotal), FormatPrice(order.Totals.Shipping),
		FormatPrice(order.Totals.VAT), FormatPrice(order.Totals.GrandTotal),
		order.Shipping.Address, order.Shipping.City, order.Shipping.Zip, order.Shipping.Country,
		qrHTML, siteURL(), order.OrderID)
}
