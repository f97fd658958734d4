package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"elitejobs_backend/internal/models"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

// DailyCount - количество откликов за день
type DailyCount struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

// WeeklyCount - количество откликов за неделю
type WeeklyCount struct {
	WeekStart time.Time `json:"weekStart"`
	Count     int64     `json:"count"`
}

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJobAndApplicant(jobID, applicantID string) (*models.Application, error)
	FindByApplicant(applicantID string) ([]models.Application, error)
	FindByJob(jobID string) ([]models.Application, error)
	FindByJobIDs(jobIDs []string) ([]models.Application, error)
	FindAll(limit, offset int) ([]models.Application, int64, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	DeleteByApplicant(applicantID string) error
	DeleteByJobIDs(jobIDs []string) error

	// Статистика; пустой jobIDs-срез с scoped=true дает нули,
	// scoped=false считает по всем вакансиям
	Count(scoped bool, jobIDs []string) (int64, error)
	DailyCounts(days int, scoped bool, jobIDs []string) ([]DailyCount, error)
	WeeklyCounts(weeks int, scoped bool, jobIDs []string) ([]WeeklyCount, error)
	CountByJob(jobID string) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	err := r.db.Create(app).Error
	if err != nil {
		// Уникальный индекс (job_id, applicant_id) ловит двойную подачу
		// при гонке
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Job").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndApplicant(jobID, applicantID string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "job_id = ? AND applicant_id = ?", jobID, applicantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByApplicant(applicantID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) FindByJob(jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) FindByJobIDs(jobIDs []string) ([]models.Application, error) {
	if len(jobIDs) == 0 {
		return []models.Application{}, nil
	}
	var apps []models.Application
	err := r.db.Preload("Applicant").Preload("Job").
		Where("job_id IN ?", jobIDs).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) FindAll(limit, offset int) ([]models.Application, int64, error) {
	var total int64
	if err := r.db.Model(&models.Application{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Application
	query := r.db.Preload("Applicant").Preload("Job").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&apps).Error; err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) DeleteByApplicant(applicantID string) error {
	return r.db.Delete(&models.Application{}, "applicant_id = ?", applicantID).Error
}

func (r *ApplicationRepositoryImpl) DeleteByJobIDs(jobIDs []string) error {
	if len(jobIDs) == 0 {
		return nil
	}
	return r.db.Delete(&models.Application{}, "job_id IN ?", jobIDs).Error
}

func (r *ApplicationRepositoryImpl) scopedQuery(scoped bool, jobIDs []string) *gorm.DB {
	query := r.db.Model(&models.Application{})
	if scoped {
		query = query.Where("job_id IN ?", jobIDs)
	}
	return query
}

func (r *ApplicationRepositoryImpl) Count(scoped bool, jobIDs []string) (int64, error) {
	if scoped && len(jobIDs) == 0 {
		return 0, nil
	}
	var total int64
	err := r.scopedQuery(scoped, jobIDs).Count(&total).Error
	return total, err
}

func (r *ApplicationRepositoryImpl) DailyCounts(days int, scoped bool, jobIDs []string) ([]DailyCount, error) {
	if scoped && len(jobIDs) == 0 {
		return []DailyCount{}, nil
	}
	since := time.Now().AddDate(0, 0, -days)

	var rows []DailyCount
	err := r.scopedQuery(scoped, jobIDs).
		Select("date_trunc('day', created_at) AS day, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ApplicationRepositoryImpl) WeeklyCounts(weeks int, scoped bool, jobIDs []string) ([]WeeklyCount, error) {
	if scoped && len(jobIDs) == 0 {
		return []WeeklyCount{}, nil
	}
	since := time.Now().AddDate(0, 0, -7*weeks)

	var rows []WeeklyCount
	err := r.scopedQuery(scoped, jobIDs).
		Select("date_trunc('week', created_at) AS week_start, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("week_start").
		Order("week_start ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ApplicationRepositoryImpl) CountByJob(jobID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&total).Error
	return total, err
}
