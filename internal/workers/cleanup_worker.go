package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"elitejobs_backend/internal/logger"
)

// CleanupWorker - фоновая чистка базы от протухших данных
type CleanupWorker struct {
	db *gorm.DB
}

func NewCleanupWorker(db *gorm.DB) *CleanupWorker {
	return &CleanupWorker{db: db}
}

// Start запускает фоновые задачи чистки
func (w *CleanupWorker) Start(ctx context.Context) {
	// Снятие просроченных кодов сброса пароля каждый час
	go w.purgeExpiredOTPs(ctx)
}

// purgeExpiredOTPs снимает коды сброса пароля с истекшим сроком.
// Просроченный код и так не пройдет проверку, задача лишь не дает
// базе копить мертвые значения.
func (w *CleanupWorker) purgeExpiredOTPs(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup worker stopped")
			return
		case <-ticker.C:
			result := w.db.Exec(`
				UPDATE users
				SET reset_otp = NULL, reset_otp_exp = NULL, reset_otp_sent_at = NULL
				WHERE reset_otp IS NOT NULL
				AND reset_otp_exp < NOW()
			`)
			if result.Error != nil {
				logger.Error("Failed to purge expired OTP codes", "error", result.Error)
			} else if result.RowsAffected > 0 {
				logger.Info("Purged expired OTP codes", "count", result.RowsAffected)
			}
		}
	}
}
