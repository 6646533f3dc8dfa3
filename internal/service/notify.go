package service

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Message is a provider-agnostic email.
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// Mailer dispatches one message. A nil Mailer on the booking service means
// the messaging provider is not configured and sends are skipped.
type Mailer interface {
	Send(msg Message) error
}

// SendGridMailer sends mail through SendGrid. The sender identity is fixed
// at construction, not read from the environment per send.
type SendGridMailer struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	return &SendGridMailer{apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
}

func (m *SendGridMailer) Send(msg Message) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", msg.To, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	log.Printf("Email sent to %s (subject: %s), status %d", msg.To, msg.Subject, response.StatusCode)
	return nil
}

// TwilioSMS fires a short alert to the owner's phone. Failures are logged
// by the caller, never surfaced to the booking outcome.
type TwilioSMS struct {
	client *twilio.RestClient
	from   string
	to     string
}

func NewTwilioSMS(accountSid, authToken, from, to string) *TwilioSMS {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})
	return &TwilioSMS{client: client, from: from, to: to}
}

func (t *TwilioSMS) Alert(body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(t.to)
	params.SetFrom(t.from)
	params.SetBody(body)

	_, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}
	return nil
}
