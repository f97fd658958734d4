package services

import (
	"gorm.io/gorm"

	"elitejobs_backend/internal/pkg/email"
	"elitejobs_backend/internal/repositories"
	"elitejobs_backend/internal/storage"
)

// ServiceContainer - центральный реестр сервисов приложения
type ServiceContainer struct {
	Auth        AuthService
	Profile     ProfileService
	Job         JobService
	Application ApplicationService
	Deletion    DeletionService
	File        FileService
	Seekers     SeekerDirectory

	Storage storage.Storage
	Email   email.Sender
}

// NewServiceContainer собирает репозитории и сервисы поверх подключения
func NewServiceContainer(db *gorm.DB, store storage.Storage, sender email.Sender) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)

	profileSvc := NewProfileService(userRepo, jobRepo)

	return &ServiceContainer{
		Auth:        NewAuthService(userRepo, sender),
		Profile:     profileSvc,
		Job:         NewJobService(jobRepo, userRepo),
		Application: NewApplicationService(appRepo, jobRepo, userRepo),
		Deletion:    NewDeletionService(userRepo, jobRepo, appRepo, store),
		File:        NewFileService(store, profileSvc),
		Seekers:     NewSeekerDirectory(userRepo),
		Storage:     store,
		Email:       sender,
	}
}
