package repositories

import (
	"errors"

	"gorm.io/gorm"

	"elitejobs_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter - фильтры и сортировка публичного списка вакансий
type JobFilter struct {
	// Подстрока по title/description/company name, без учета регистра
	Search             string
	Location           string
	JobType            string
	ExperienceLevel    string
	Category           string
	VerificationStatus string
	PostedBy           string
	// Только вакансии, созданные админом
	PostedByAdmin bool
	// Скрытые (isActive=false) вакансии отдает только false
	IncludeInactive bool

	// newest (default), oldest, salary_desc, salary_asc, company_asc
	Sort string

	Page  int
	Limit int
}

// PosterCount - количество вакансий по автору
type PosterCount struct {
	PosterID   string `json:"posterId"`
	PosterName string `json:"posterName"`
	Count      int64  `json:"count"`
}

// CompanyCount - количество вакансий по компании
type CompanyCount struct {
	Company string `json:"company"`
	Count   int64  `json:"count"`
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	Find(filter JobFilter) ([]models.Job, int64, error)

	FindIDsByPoster(posterID string) ([]string, error)
	DeleteByPoster(posterID string) error
	SetActiveByPoster(posterID string, active bool) error

	SetVerificationStatus(id string, status string) error
	// BackfillVerificationStatus проставляет дефолт записям без статуса
	BackfillVerificationStatus() (int64, error)
	// UpdateCompanyLogoByPoster обновляет логотип во всех вакансиях автора
	UpdateCompanyLogoByPoster(posterID, logo string) (int64, error)

	CountByCategory() (map[string]int64, error)
	CountByVerificationStatus() (map[string]int64, error)
	CountByPosterWithRole(role models.UserRole) ([]PosterCount, error)
	DistinctCompanies() ([]CompanyCount, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Save(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Find(filter JobFilter) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{})

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR company->>'name' ILIKE ?",
			like, like, like,
		)
	}
	if filter.Location != "" {
		query = query.Where("location::text ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", filter.ExperienceLevel)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.VerificationStatus != "" {
		query = query.Where("verification_status = ?", filter.VerificationStatus)
	}
	if filter.PostedBy != "" {
		query = query.Where("posted_by = ?", filter.PostedBy)
	}
	if filter.PostedByAdmin {
		query = query.Where(
			"posted_by IN (?)",
			r.db.Model(&models.User{}).Select("id").Where("role = ?", models.UserRoleAdmin),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "oldest":
		query = query.Order("created_at ASC")
	case "salary_desc":
		// Суммы хранятся строками, сортировка лексическая
		query = query.Order("salary->>'max' DESC")
	case "salary_asc":
		query = query.Order("salary->>'max' ASC")
	case "company_asc":
		query = query.Order("company->>'name' ASC")
	default:
		query = query.Order("created_at DESC")
	}

	if filter.Limit > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var jobs []models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepositoryImpl) FindIDsByPoster(posterID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Job{}).Where("posted_by = ?", posterID).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *JobRepositoryImpl) DeleteByPoster(posterID string) error {
	return r.db.Delete(&models.Job{}, "posted_by = ?", posterID).Error
}

func (r *JobRepositoryImpl) SetActiveByPoster(posterID string, active bool) error {
	return r.db.Model(&models.Job{}).
		Where("posted_by = ?", posterID).
		Update("is_active", active).Error
}

func (r *JobRepositoryImpl) SetVerificationStatus(id string, status string) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", id).Update("verification_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) BackfillVerificationStatus() (int64, error) {
	result := r.db.Model(&models.Job{}).
		Where("verification_status IS NULL OR verification_status = ''").
		Update("verification_status", models.VerificationStatusNotVerified)
	return result.RowsAffected, result.Error
}

func (r *JobRepositoryImpl) UpdateCompanyLogoByPoster(posterID, logo string) (int64, error) {
	result := r.db.Model(&models.Job{}).
		Where("posted_by = ?", posterID).
		Update("company", gorm.Expr("jsonb_set(company, '{logo}', to_jsonb(?::text))", logo))
	return result.RowsAffected, result.Error
}

type categoryRow struct {
	Category string
	Count    int64
}

func (r *JobRepositoryImpl) CountByCategory() (map[string]int64, error) {
	var rows []categoryRow
	err := r.db.Model(&models.Job{}).
		Select("category, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

type statusRow struct {
	VerificationStatus string
	Count              int64
}

func (r *JobRepositoryImpl) CountByVerificationStatus() (map[string]int64, error) {
	var rows []statusRow
	err := r.db.Model(&models.Job{}).
		Select("verification_status, COUNT(*) AS count").
		Group("verification_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.VerificationStatus] = row.Count
	}
	return counts, nil
}

func (r *JobRepositoryImpl) CountByPosterWithRole(role models.UserRole) ([]PosterCount, error) {
	var rows []PosterCount
	err := r.db.Model(&models.Job{}).
		Select("users.id AS poster_id, users.name AS poster_name, COUNT(jobs.id) AS count").
		Joins("JOIN users ON users.id = jobs.posted_by").
		Where("users.role = ?", role).
		Group("users.id, users.name").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *JobRepositoryImpl) DistinctCompanies() ([]CompanyCount, error) {
	var rows []CompanyCount
	err := r.db.Model(&models.Job{}).
		Select("company->>'name' AS company, COUNT(*) AS count").
		Where("company->>'name' <> ''").
		Group("company->>'name'").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
