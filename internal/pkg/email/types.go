package email

import "fmt"

// Config - настройки SMTP
type Config struct {
	SMTPHost     string
	SMTPPort     int
	Username     string
	Password     string
	FromEmail    string
	FromName     string
	UseTLS       bool
	TemplatePath string
}

// Validate проверяет обязательные поля
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.SMTPPort == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// Email - одно письмо
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Sender - интерфейс отправки почты
type Sender interface {
	Send(email *Email) error

	// SendOTP отправляет одноразовый код сброса пароля
	SendOTP(to, name, code string, expiresMinutes int) error

	// SendWelcome отправляет приветственное письмо после регистрации
	SendWelcome(to, name, role string) error
}

// TemplateData - общие поля для всех шаблонов
type TemplateData struct {
	UserName     string
	Subject      string
	Message      string
	SupportEmail string
	CompanyName  string
}

// OTPData - данные для письма с кодом сброса пароля
type OTPData struct {
	TemplateData
	Code           string
	ExpiresMinutes int
}

// WelcomeData - данные приветственного письма
type WelcomeData struct {
	TemplateData
	UserRole string
}
