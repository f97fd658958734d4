package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"elitejobs_backend/internal/logger"
)

// SMTPSender реализация Sender поверх gomail
type SMTPSender struct {
	config    Config
	templates *TemplateManager
	dialer    *gomail.Dialer
}

// NewSMTPSender создает новый SMTP отправитель
func NewSMTPSender(config Config) (Sender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password)

	return &SMTPSender{
		config:    config,
		templates: tm,
		dialer:    dialer,
	}, nil
}

// Send отправляет email
func (s *SMTPSender) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromEmail, s.config.FromName))
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.Body != "" {
		m.SetBody("text/plain", email.Body)
		if email.HTMLBody != "" {
			m.AddAlternative("text/html", email.HTMLBody)
		}
	} else {
		m.SetBody("text/html", email.HTMLBody)
	}

	return s.dialer.DialAndSend(m)
}

// SendTemplate отправляет email используя шаблон
func (s *SMTPSender) SendTemplate(to []string, subject, templateName string, data interface{}) error {
	htmlBody, err := s.templates.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return s.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}

// SendOTP отправляет одноразовый код сброса пароля
func (s *SMTPSender) SendOTP(to, name, code string, expiresMinutes int) error {
	data := OTPData{
		TemplateData: TemplateData{
			UserName:     name,
			Subject:      "Password Reset Code",
			SupportEmail: s.config.FromEmail,
			CompanyName:  s.config.FromName,
		},
		Code:           code,
		ExpiresMinutes: expiresMinutes,
	}

	return s.SendTemplate([]string{to}, "Password Reset Code", "password_otp", data)
}

// SendWelcome отправляет приветственное письмо
func (s *SMTPSender) SendWelcome(to, name, role string) error {
	data := WelcomeData{
		TemplateData: TemplateData{
			UserName:     name,
			Subject:      "Welcome!",
			SupportEmail: s.config.FromEmail,
			CompanyName:  s.config.FromName,
		},
		UserRole: role,
	}

	return s.SendTemplate([]string{to}, "Welcome!", "welcome", data)
}

// NoopSender - заглушка для окружений без SMTP: письма уходят в лог
type NoopSender struct{}

func NewNoopSender() Sender {
	return &NoopSender{}
}

func (n *NoopSender) Send(email *Email) error {
	logger.Info("email skipped (no smtp configured)", "to", email.To, "subject", email.Subject)
	return nil
}

func (n *NoopSender) SendOTP(to, name, code string, expiresMinutes int) error {
	logger.Info("otp email skipped (no smtp configured)", "to", to)
	return nil
}

func (n *NoopSender) SendWelcome(to, name, role string) error {
	logger.Info("welcome email skipped (no smtp configured)", "to", to)
	return nil
}
