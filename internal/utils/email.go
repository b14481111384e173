package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"audiophile_back_end/internal/models"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

// MailSender envoie l'email de confirmation de commande via SMTP.
// Implémente checkout.ConfirmationSender.
type MailSender struct{}

func NewMailSender() *MailSender {
	return &MailSender{}
}

func (s *MailSender) SendOrderConfirmation(ctx context.Context, order models.Order) (string, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return "", fmt.Errorf("SMTP_HOST manquant — envoi impossible")
	}

	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "noreply@audiophile-store.com"
	}

	// QR de suivi best-effort : sans lui l'email part quand même
	qrBase64, err := GenerateOrderQR(order.OrderID)
	if err != nil {
		log.Printf("⚠️ Erreur génération QR pour %s: %v", order.OrderID, err)
		qrBase64 = ""
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return "", err
	}
	if err := msg.To(order.Customer.Email); err != nil {
		return "", err
	}
	msg.Subject("Order Confirmation - " + order.OrderID)
	msg.SetBodyString(mail.TypeTextHTML, GenerateOrderConfirmationHTML(order, qrBase64))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return "", err
	}

	log.Println("📤 Envoi de la confirmation à", order.Customer.Email)
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return "", err
	}

	return uuid.NewString(), nil
}
