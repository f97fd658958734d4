package handlers

import (
	"elitejobs_backend/internal/services"
	"elitejobs_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	OAuth       *OAuthHandler
	Profile     *ProfileHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Admin       *AdminHandler
	Recruiter   *RecruiterHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Health:      NewHealthHandler(base),
		Auth:        NewAuthHandler(base, sc.Auth, sc.Profile),
		OAuth:       NewOAuthHandler(base, sc.Auth),
		Profile:     NewProfileHandler(base, sc.Profile, sc.File, sc.Deletion),
		Job:         NewJobHandler(base, sc.Job, sc.Application),
		Application: NewApplicationHandler(base, sc.Application),
		Admin:       NewAdminHandler(base, sc.Auth, sc.Job, sc.Deletion),
		Recruiter:   NewRecruiterHandler(base, sc.Profile, sc.Application, sc.Seekers),
	}
}
