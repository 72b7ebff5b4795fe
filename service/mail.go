// Package service contains background side tasks that run outside the
// request/response cycle
package service

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Sender dispatches mail without blocking the calling request.
type Sender interface {
	SendAsync(to, subject, html string)
}

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer() *Mailer {
	from := viper.GetString("mail.sender")

	return &Mailer{
		dialer: gomail.NewDialer(
			viper.GetString("mail.host"),
			viper.GetInt("mail.port"),
			from,
			viper.GetString("mail.password"),
		),
		from: from,
	}
}

// SendAsync dispatches the mail on its own goroutine. Delivery is best
// effort: a failed send never fails the request that triggered it, but
// it is logged instead of silently dropped.
func (m *Mailer) SendAsync(to, subject, html string) {
	go func() {
		if err := m.send(to, subject, html); err != nil {
			zap.L().Error("Failed to send mail",
				zap.Error(err),
				zap.String("to", to),
				zap.String("subject", subject),
			)
		}
	}()
}

func (m *Mailer) send(to, subject, html string) error {
	if to == m.from {
		return errors.New("invalid recipient address")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	return m.dialer.DialAndSend(msg)
}

// VerifyEmailBody builds the mail body holding the account verification link.
func VerifyEmailBody(token string) string {
	return fmt.Sprintf("<a href=\"%v/email-confirmation/%v\">Click Here To Verify Your Account</a>", frontendBase(), token)
}

// ResetPasswordBody builds the mail body holding the password reset link.
func ResetPasswordBody(token string) string {
	return fmt.Sprintf("<a href=\"%v/forgot-password/%v\">Reset Password</a>", frontendBase(), token)
}

func frontendBase() string {
	scheme := "http"
	if viper.GetBool("host.ssl_enabled") {
		scheme = "https"
	}

	return fmt.Sprintf("%v://%v", scheme, viper.GetString("host.domain"))
}
