package utils

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateOrderQR encode le lien de suivi de commande en QR, retourné en
// base64 prêt à mettre dans <img src="...">
func GenerateOrderQR(orderID string) (string, error) {
	link := siteURL() + "#order-" + orderID

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
