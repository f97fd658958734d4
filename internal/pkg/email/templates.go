package email

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// TemplateManager управляет шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
	config    Config
}

// NewTemplateManager создает новый менеджер шаблонов
func NewTemplateManager(config Config) (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
		config:    config,
	}

	for _, name := range []string{"password_otp", "welcome"} {
		tpl, err := tm.loadTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

// loadTemplate загружает шаблон из файла, встроенный - как fallback
func (tm *TemplateManager) loadTemplate(name string) (*template.Template, error) {
	if tm.config.TemplatePath != "" {
		contentPath := filepath.Join(tm.config.TemplatePath, name+".html")
		if tpl, err := template.ParseFiles(contentPath); err == nil {
			return tpl, nil
		}
	}
	return tm.getBuiltinTemplate(name)
}

// getBuiltinTemplate возвращает встроенные шаблоны
func (tm *TemplateManager) getBuiltinTemplate(name string) (*template.Template, error) {
	var tplText string

	switch name {
	case "password_otp":
		tplText = otpTemplate
	case "welcome":
		tplText = welcomeTemplate
	default:
		return nil, fmt.Errorf("unknown template: %s", name)
	}

	return template.New(name).Parse(tplText)
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(name string, data interface{}) (string, error) {
	tpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

const otpTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Password Reset</h2>
  <p>Hello{{if .UserName}}, {{.UserName}}{{end}}!</p>
  <p>Your one-time code:</p>
  <p style="font-size: 28px; font-weight: bold; letter-spacing: 4px;">{{.Code}}</p>
  <p>The code expires in {{.ExpiresMinutes}} minutes. If you did not request a reset, ignore this email.</p>
  <p>— {{.CompanyName}}</p>
</body>
</html>`

const welcomeTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome{{if .UserName}}, {{.UserName}}{{end}}!</h2>
  <p>Your {{.UserRole}} account has been created.</p>
  <p>If you have any questions, write to <a href="mailto:{{.SupportEmail}}">{{.SupportEmail}}</a>.</p>
  <p>— {{.CompanyName}}</p>
</body>
</html>`
