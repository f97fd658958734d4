package services

import (
	"strings"

	"elitejobs_backend/internal/auth"
	"elitejobs_backend/internal/logger"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/repositories"
	"elitejobs_backend/internal/services/dto"
	"elitejobs_backend/pkg/apperrors"
)

const defaultSalaryCurrency = "INR"

type JobService interface {
	Create(actorID string, role models.UserRole, req *dto.CreateJobRequest) (*models.Job, error)
	Update(actorID string, role models.UserRole, jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(actorID string, role models.UserRole, jobID string) error
	Get(jobID string) (*models.Job, error)
	List(query *dto.JobListQuery) (*dto.JobListResponse, error)
	ListByPoster(posterID string) ([]models.Job, error)

	Verify(role models.UserRole, jobID, status string) (*models.Job, error)
	Aggregates() (*dto.JobAggregatesResponse, error)

	// ResyncCompanyLogos проставляет в снимки вакансий актуальные
	// логотипы из профилей работодателей
	ResyncCompanyLogos() (int64, error)
	// BackfillVerificationStatus чинит записи без статуса верификации
	BackfillVerificationStatus() (int64, error)

	// JobOptions - справочники для форм вакансий
	JobOptions() map[string][]string
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// Create - публикация вакансии.
// Для jobHoster/recruiter компания копируется из профиля автора,
// admin и eliteTeam обязаны прислать компанию в payload.
func (s *JobServiceImpl) Create(actorID string, role models.UserRole, req *dto.CreateJobRequest) (*models.Job, error) {
	caps := auth.CapabilitiesFor(role)
	if !caps.CanPostJobs {
		return nil, apperrors.ErrInsufficientPermissions
	}

	company, err := s.resolveCompany(actorID, caps, req.Company)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:            req.Title,
		Description:      req.Description,
		Company:          *company,
		Location:         req.Location,
		JobType:          req.JobType,
		InterviewType:    req.InterviewType,
		WorkType:         req.WorkType,
		MinEducation:     req.MinEducation,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Skills:           req.Skills,
		ExperienceLevel:  req.ExperienceLevel,
		NoticePeriod:     req.NoticePeriod,
		PostedBy:         actorID,
		IsActive:         true,
		Deadline:         req.Deadline,
		Category:         req.Category,
		NumberOfOpenings: req.NumberOfOpenings,
		YearOfPassing:    req.YearOfPassing,
		Shift:            req.Shift,
		WalkInDate:       req.WalkInDate,
		WalkInTime:       req.WalkInTime,
	}
	job.VerificationStatus = models.VerificationStatusNotVerified
	if job.JobType == "" {
		job.JobType = models.JobTypeFullTime
	}
	if req.Salary != nil {
		job.Salary = models.Salary{
			Min:      req.Salary.Min,
			Max:      req.Salary.Max,
			Currency: req.Salary.Currency,
		}
		if job.Salary.Currency == "" && (job.Salary.Min != "" || job.Salary.Max != "") {
			job.Salary.Currency = defaultSalaryCurrency
		}
	}

	if err := validateWalkIn(job); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Update - частичное обновление; чужую вакансию редактирует только
// admin или eliteTeam
func (s *JobServiceImpl) Update(actorID string, role models.UserRole, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.Get(jobID)
	if err != nil {
		return nil, err
	}

	if !auth.CanMutateJob(role, actorID, job.PostedBy) {
		return nil, apperrors.ErrJobOwnership
	}

	applyJobUpdate(job, req)

	// Компания пришла без логотипа - подставляем логотип из профиля автора
	if req.Company != nil && req.Company.Logo == "" {
		if poster, err := s.userRepo.FindByID(job.PostedBy); err == nil {
			if cp := poster.CompanyProfileOrNil(); cp != nil {
				job.Company.Logo = cp.CompanyLogo
			}
		}
	}

	if err := validateWalkIn(job); err != nil {
		return nil, err
	}
	if job.Company.Name == "" {
		return nil, apperrors.ErrCompanyNameRequired
	}

	if err := s.jobRepo.Update(job); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Delete - удаление вакансии; eliteTeam не удаляет даже свои
func (s *JobServiceImpl) Delete(actorID string, role models.UserRole, jobID string) error {
	job, err := s.Get(jobID)
	if err != nil {
		return err
	}

	if !auth.CanDeleteJob(role, actorID, job.PostedBy) {
		return apperrors.ErrJobOwnership
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) Get(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) List(query *dto.JobListQuery) (*dto.JobListResponse, error) {
	filter := repositories.JobFilter{
		Search:          query.Search,
		Location:        query.Location,
		JobType:         query.JobType,
		ExperienceLevel: query.ExperienceLevel,
		Category:        query.Category,
		PostedBy:        query.PostedBy,
		PostedByAdmin:   query.PostedByAdmin,
		Sort:            query.Sort,
		Page:            query.Page,
		Limit:           query.Limit,
	}
	if query.VerificationStatus != "" {
		status, err := NormalizeVerificationStatus(query.VerificationStatus)
		if err != nil {
			return nil, err
		}
		filter.VerificationStatus = status
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	jobs, total, err := s.jobRepo.Find(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Jobs:  jobs,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// ListByPoster - все вакансии автора, включая скрытые
func (s *JobServiceImpl) ListByPoster(posterID string) ([]models.Job, error) {
	jobs, _, err := s.jobRepo.Find(repositories.JobFilter{
		PostedBy:        posterID,
		IncludeInactive: true,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// Verify - смена статуса верификации admin'ом или eliteTeam
func (s *JobServiceImpl) Verify(role models.UserRole, jobID, status string) (*models.Job, error) {
	if !auth.CapabilitiesFor(role).CanVerifyJobs {
		return nil, apperrors.ErrInsufficientPermissions
	}

	normalized, err := NormalizeVerificationStatus(status)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.SetVerificationStatus(jobID, normalized); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.Get(jobID)
}

// Aggregates - сводные счетчики для админской панели.
// Категории без вакансий присутствуют с нулем.
func (s *JobServiceImpl) Aggregates() (*dto.JobAggregatesResponse, error) {
	byCategory, err := s.jobRepo.CountByCategory()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, category := range models.CategoryOptions {
		if _, ok := byCategory[category]; !ok {
			byCategory[category] = 0
		}
	}

	byStatus, err := s.jobRepo.CountByVerificationStatus()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	byElite, err := s.jobRepo.CountByPosterWithRole(models.UserRoleEliteTeam)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	companies, err := s.jobRepo.DistinctCompanies()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobAggregatesResponse{
		ByCategory:           byCategory,
		ByVerificationStatus: byStatus,
		ByElitePoster:        byElite,
		Companies:            companies,
	}, nil
}

func (s *JobServiceImpl) ResyncCompanyLogos() (int64, error) {
	var total int64
	for _, role := range []models.UserRole{models.UserRoleJobHoster, models.UserRoleRecruiter} {
		users, err := s.userRepo.FindByRole(role)
		if err != nil {
			return total, apperrors.InternalError(err)
		}
		for i := range users {
			cp := users[i].CompanyProfileOrNil()
			if cp == nil || cp.CompanyLogo == "" {
				continue
			}
			updated, err := s.jobRepo.UpdateCompanyLogoByPoster(users[i].ID, cp.CompanyLogo)
			if err != nil {
				return total, apperrors.InternalError(err)
			}
			total += updated
		}
	}
	logger.Info("company logos resynced", "jobs_updated", total)
	return total, nil
}

func (s *JobServiceImpl) BackfillVerificationStatus() (int64, error) {
	updated, err := s.jobRepo.BackfillVerificationStatus()
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *JobServiceImpl) JobOptions() map[string][]string {
	return map[string][]string{
		"jobType":            models.JobTypeOptions,
		"interviewType":      models.InterviewTypeOptions,
		"workType":           models.WorkTypeOptions,
		"experienceLevel":    models.ExperienceLevelOptions,
		"noticePeriod":       models.NoticePeriodOptions,
		"category":           models.CategoryOptions,
		"education":          models.EducationOptions,
		"shift":              models.ShiftOptions,
		"verificationStatus": models.VerificationStatusOptions,
	}
}

// resolveCompany выбирает источник данных компании по роли автора
func (s *JobServiceImpl) resolveCompany(actorID string, caps auth.Capabilities, input *dto.CompanyInput) (*models.Company, error) {
	if caps.NeedsExplicitCompany {
		if input == nil || input.Name == "" {
			return nil, apperrors.ErrCompanyNameRequired
		}
		return &models.Company{
			Name:        input.Name,
			Description: input.Description,
			Website:     input.Website,
			Logo:        input.Logo,
		}, nil
	}

	poster, err := s.userRepo.FindByID(actorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	cp := poster.CompanyProfileOrNil()
	if cp == nil || cp.CompanyName == "" {
		return nil, apperrors.ErrCompanyNameRequired
	}
	return &models.Company{
		Name:        cp.CompanyName,
		Description: cp.CompanyDescription,
		Website:     cp.CompanyWebsite,
		Logo:        cp.CompanyLogo,
	}, nil
}

// applyJobUpdate накладывает присланные поля; массивы заменяются целиком
func applyJobUpdate(job *models.Job, req *dto.UpdateJobRequest) {
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Company != nil {
		job.Company = models.Company{
			Name:        req.Company.Name,
			Description: req.Company.Description,
			Website:     req.Company.Website,
			Logo:        req.Company.Logo,
		}
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.InterviewType != nil {
		job.InterviewType = *req.InterviewType
		// Уход от Walk-in обнуляет дату и время очной встречи
		if !job.IsWalkIn() {
			job.WalkInDate = nil
			job.WalkInTime = ""
		}
	}
	if req.WorkType != nil {
		job.WorkType = *req.WorkType
	}
	if req.MinEducation != nil {
		job.MinEducation = *req.MinEducation
	}
	if req.Salary != nil {
		job.Salary = models.Salary{
			Min:      req.Salary.Min,
			Max:      req.Salary.Max,
			Currency: req.Salary.Currency,
		}
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Responsibilities != nil {
		job.Responsibilities = *req.Responsibilities
	}
	if req.Skills != nil {
		job.Skills = *req.Skills
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.NoticePeriod != nil {
		job.NoticePeriod = *req.NoticePeriod
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.NumberOfOpenings != nil {
		job.NumberOfOpenings = req.NumberOfOpenings
	}
	if req.YearOfPassing != nil {
		job.YearOfPassing = *req.YearOfPassing
	}
	if req.Shift != nil {
		job.Shift = *req.Shift
	}
	if req.WalkInDate != nil {
		job.WalkInDate = req.WalkInDate
	}
	if req.WalkInTime != nil {
		job.WalkInTime = *req.WalkInTime
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
}

// validateWalkIn - Walk-in требует и дату, и время
func validateWalkIn(job *models.Job) error {
	if job.IsWalkIn() && (job.WalkInDate == nil || job.WalkInTime == "") {
		return apperrors.ErrWalkInDetails
	}
	return nil
}

// NormalizeVerificationStatus приводит вольные написания к каноническим:
// регистр, дефисы и подчеркивания, лишние пробелы, слитное "notverified"
func NormalizeVerificationStatus(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.Join(strings.Fields(s), " ")

	switch s {
	case models.VerificationStatusVerified:
		return models.VerificationStatusVerified, nil
	case models.VerificationStatusNotVerified, "notverified":
		return models.VerificationStatusNotVerified, nil
	}
	return "", apperrors.ErrInvalidOperation("job", "Unknown verification status")
}
