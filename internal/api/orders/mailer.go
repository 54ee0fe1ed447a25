package ordersapi

import (
	"fmt"
	"net/smtp"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain/orders"
)

// Mailer sends the commission notification for a submitted order. The
// handler decides what a failure means (a soft warning); implementations
// only report it.
type Mailer interface {
	SendOrderNotification(order orders.Order) error
}

// Notifier is swapped for a recorder in tests.
var Notifier Mailer = SMTPMailer{}

type SMTPMailer struct{}

func (SMTPMailer) SendOrderNotification(order orders.Order) error {
	from := config.SMTP_FROM
	password := config.SMTP_PASSWORD
	host := config.SMTP_HOST
	port := config.SMTP_PORT
	to := config.ORDER_NOTIFY_TO

	if from == "" || host == "" || to == "" {
		return fmt.Errorf("smtp not configured")
	}

	auth := smtp.PlainAuth("", from, password, host)

	subject := "Yeni Sipariş Talebi"
	body := fmt.Sprintf(
		"İsim: %s\nE-posta: %s\nTelefon: %s\nEvcil Hayvan: %s\nTarih: %s\n\nMesaj:\n%s\n",
		order.Name, order.Email, order.Phone, order.PetType, order.Date, order.Message)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println("❌ SMTP error:", err)
	}
	return err
}
