// File: internal/mail/mailer.go
package mail

import (
	"fmt"
	"net"
	"net/smtp"
)

// smtpSendMail 測試可覆寫
var smtpSendMail = smtp.SendMail

// Mailer 寄送單封郵件
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer 透過 SMTP 寄送郵件
type SMTPMailer struct {
	Addr     string // host:port
	Username string
	Password string
	From     string
}

func NewSMTPMailer(addr, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		Addr:     addr,
		Username: username,
		Password: password,
		From:     from,
	}
}

// Send 組裝並寄出郵件
func (m *SMTPMailer) Send(to, subject, body string) error {
	host, _, err := net.SplitHostPort(m.Addr)
	if err != nil {
		return fmt.Errorf("SMTPMailer.Send: %w", err)
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.From, to, subject, body))

	auth := smtp.PlainAuth("", m.Username, m.Password, host)
	if err := smtpSendMail(m.Addr, auth, m.From, []string{to}, msg); err != nil {
		return fmt.Errorf("SMTPMailer.Send: %w", err)
	}
	return nil
}

// OTPSubject 與 OTPBody 組出 OTP 通知信內容
const OTPSubject = "Your OTP Code"

func OTPBody(email, code string) string {
	return fmt.Sprintf("Hello %s, your OTP is: %s", email, code)
}

// FakeMailer 測試用
type FakeMailer struct {
	SendFn func(to, subject, body string) error
}

func (f *FakeMailer) Send(to, subject, body string) error {
	if f.SendFn != nil {
		return f.SendFn(to, subject, body)
	}
	panic("unexpected Send")
}
