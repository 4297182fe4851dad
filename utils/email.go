package utils

import (
	"errors"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/socialboost/vision/config"
)

// ErrEmailDisabled is returned when no SendGrid key is configured
var ErrEmailDisabled = errors.New("SENDGRID_API_KEY is not set in environment variables")

// SendGridMailer delivers transactional e-mails through SendGrid
type SendGridMailer struct{}

// SendEmail sends an email using SendGrid
func (SendGridMailer) SendEmail(toName, toEmail, subject, textContent, htmlContent string) error {
	return SendEmail(toName, toEmail, subject, textContent, htmlContent)
}

// SendEmail sends an email using SendGrid
func SendEmail(toName, toEmail, subject, textContent, htmlContent string) error {
	apiKey := config.SendGridAPIKey
	if apiKey == "" {
		return ErrEmailDisabled
	}

	from := mail.NewEmail("SocialBoost Vision", config.SendGridFromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, textContent, htmlContent)
	client := sendgrid.NewSendClient(apiKey)

	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}

	if response.StatusCode >= 400 {
		log.Printf("SendGrid API Error: Status Code %d, Body: %s", response.StatusCode, response.Body)
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	log.Printf("Email sent successfully to %s. Status Code: %d", toEmail, response.StatusCode)
	return nil
}
