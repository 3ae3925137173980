package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOrderConfirmation(toEmail, orderId string, total float64) error
	SendCancellationDecision(toEmail, orderId, decision, notes string, refundAmount float64) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendOrderConfirmation(toEmail, orderId string, total float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your StyleHub order is confirmed")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thanks for shopping with StyleHub!</h2>
			<p>Your order <b>%s</b> has been paid and is being prepared.</p>
			<p>Order total: <b>%.2f</b></p>
			<p>We'll let you know when it ships.</p>
		</div>
	`, orderId, total)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send order confirmation to %s: %v\n", toEmail, err)
		return err
	}
	return nil
}

func (s *emailService) SendCancellationDecision(toEmail, orderId, decision, notes string, refundAmount float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Cancellation request %s", decision))

	refundLine := ""
	if decision == "approved" {
		refundLine = fmt.Sprintf("<p>Refund amount: <b>%.2f</b></p>", refundAmount)
	}
	notesLine := ""
	if notes != "" {
		notesLine = fmt.Sprintf("<p>Notes from our team: %s</p>", notes)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your cancellation request was %s</h2>
			<p>Order: <b>%s</b></p>
			%s
			%s
		</div>
	`, decision, orderId, refundLine, notesLine)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send cancellation decision to %s: %v\n", toEmail, err)
		return err
	}
	return nil
}
