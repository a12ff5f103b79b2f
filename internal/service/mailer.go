// Package service holds outbound collaborators that aren't storage
package service

import (
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer sends a single message. Fails on transport errors only; the
// caller decides whether delivery is critical for its flow.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail through the SMTP relay configured under the
// mail.* config keys.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer() *SMTPMailer {
	from := viper.GetString("mail.sender")

	return &SMTPMailer{
		dialer: gomail.NewDialer(
			viper.GetString("mail.host"),
			viper.GetInt("mail.port"),
			from,
			viper.GetString("mail.password"),
		),
		from: from,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}
