package dto

import (
	"elitejobs_backend/internal/repositories"
)

// ApplyRequest - подача отклика. Резюме опционально:
// при отсутствии берется из профиля соискателя.
type ApplyRequest struct {
	Resume      string `json:"resume"`
	CoverLetter string `json:"coverLetter"`
}

// UpdateApplicationStatusRequest - смена статуса отклика
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

// ApplicationStatsResponse - статистика откликов в зоне видимости
// запрашивающего
type ApplicationStatsResponse struct {
	Total  int64                      `json:"total"`
	Daily  []repositories.DailyCount  `json:"daily"`
	Weekly []repositories.WeeklyCount `json:"weekly"`
}
