package app

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"elitejobs_backend/internal/config"
	"elitejobs_backend/internal/handlers"
	"elitejobs_backend/internal/logger"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/pkg/email"
	"elitejobs_backend/internal/routes"
	"elitejobs_backend/internal/services"
	"elitejobs_backend/internal/storage"
	"elitejobs_backend/internal/validator"
	"elitejobs_backend/internal/workers"
	"elitejobs_backend/pkg/apperrors"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env != "production")

	gormDB := connectDatabase(cfg)

	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	sender := buildEmailSender(cfg)

	serviceContainer := services.NewServiceContainer(gormDB, storageInstance, sender)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	workers.NewCleanupWorker(gormDB).Start(context.Background())

	router := routes.SetupRouter(gormDB, appHandlers)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// connectDatabase открывает соединение и прогоняет миграции.
// TranslateError нужен репозиториям: они различают gorm.ErrDuplicatedKey.
func connectDatabase(cfg *config.Config) *gorm.DB {
	logger.Info("Connecting to database...")

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	// uuid_generate_v4 для первичных ключей
	if err := gormDB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		logger.Fatal("Failed to create uuid-ossp extension", "error", err)
	}

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	return gormDB
}

// buildEmailSender - SMTP при полной конфигурации, иначе письма в лог
func buildEmailSender(cfg *config.Config) email.Sender {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, emails will be logged instead of sent")
		return email.NewNoopSender()
	}

	sender, err := email.NewSMTPSender(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		Username:     cfg.Email.SMTPUsername,
		Password:     cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
		UseTLS:       cfg.Email.UseTLS,
		TemplatePath: cfg.Email.TemplatesDir,
	})
	if err != nil {
		logger.Warn("Failed to initialize SMTP sender, falling back to log-only", "error", err)
		return email.NewNoopSender()
	}
	return sender
}
