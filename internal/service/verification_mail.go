package service

import (
	"fmt"

	"github.com/spf13/viper"
)

// SendVerificationMail mails the account verification link for a freshly
// issued token. The link points at the public verify endpoint.
func SendVerificationMail(m Mailer, token, sendTo string) error {
	scheme := "http"
	if viper.GetBool("host.ssl.enabled") {
		scheme = "https"
	}

	verifLink := fmt.Sprintf("%s://%s/api/users/verify?token=%s",
		scheme, viper.GetString("host.domain"), token)

	body := fmt.Sprintf("Click <a href='%s'>here</a> to verify your account.<br><br>This link will expire in 48 hours.", verifLink)

	return m.Send(sendTo, "Verify your account", body)
}
