package services

import (
	"crypto/tls"
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"gopkg.in/gomail.v2"
)

// SendEmail là hàm điều phối gửi email theo EMAIL_PROVIDER.
// Các service khác (otpService) gọi qua hàm này.
func SendEmail(to, subject, body string) error {
	provider := os.Getenv("EMAIL_PROVIDER")

	switch provider {
	case "sendgrid":
		return sendEmailSendGrid(to, subject, body)
	case "smtp":
		return sendEmailSMTP(to, subject, body)
	default:
		// Mặc định cho môi trường dev nếu không cấu hình
		log.Println("EMAIL_PROVIDER chưa cấu hình, dùng SMTP (gomail)")
		return sendEmailSMTP(to, subject, body)
	}
}

// sendEmailSMTP gửi qua SMTP bằng gomail
func sendEmailSMTP(to, subject, htmlBody string) error {
	host := os.Getenv("SMTP_HOST")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	port := 587 // Mặc định
	if v := os.Getenv("SMTP_PORT"); v != "" {
		fmt.Sscanf(v, "%d", &port)
	}

	if host == "" || user == "" {
		return fmt.Errorf("thiếu cấu hình SMTP_HOST hoặc SMTP_USER")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", user)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(host, port, user, pass)
	d.TLSConfig = &tls.Config{
		ServerName: host,
	}

	if err := d.DialAndSend(m); err != nil {
		log.Printf("[EmailService-SMTP] Gửi mail tới %s thất bại: %v", to, err)
		return err
	}
	return nil
}

// sendEmailSendGrid gửi qua SendGrid API
func sendEmailSendGrid(to, subject, body string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	senderEmail := os.Getenv("SENDER_EMAIL")
	senderName := os.Getenv("SENDER_NAME")

	if apiKey == "" || senderEmail == "" {
		return fmt.Errorf("thiếu cấu hình SENDGRID_API_KEY hoặc SENDER_EMAIL")
	}

	from := mail.NewEmail(senderName, senderEmail)
	toEmail := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, toEmail, body, body)
	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("gửi email qua SendGrid thất bại: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("SendGrid trả lỗi, status %d: %s", response.StatusCode, response.Body)
}
