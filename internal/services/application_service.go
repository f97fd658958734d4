package services

import (
	"elitejobs_backend/internal/auth"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/repositories"
	"elitejobs_backend/internal/services/dto"
	"elitejobs_backend/pkg/apperrors"
)

const (
	statsDailyWindow  = 7
	statsWeeklyWindow = 4
)

type ApplicationService interface {
	Apply(actorID string, role models.UserRole, jobID string, req *dto.ApplyRequest) (*models.Application, error)
	UpdateStatus(actorID string, role models.UserRole, applicationID string, status models.ApplicationStatus) (*models.Application, error)

	// ListMine - отклики соискателя
	ListMine(applicantID string) ([]models.Application, error)
	// ListForJob - отклики на вакансию для ее автора или ревьюера
	ListForJob(actorID string, role models.UserRole, jobID string) ([]models.Application, error)
	// ListAll - все отклики в зоне видимости роли
	ListAll(actorID string, role models.UserRole, limit, offset int) ([]models.Application, int64, error)
	// ListForApplicant - отклики конкретного соискателя (для рекрутеров)
	ListForApplicant(role models.UserRole, applicantID string) ([]models.Application, error)

	// Stats - счетчики откликов; jobID сужает выборку до одной вакансии
	Stats(actorID string, role models.UserRole, jobID string) (*dto.ApplicationStatsResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// Apply - подача отклика. Скрытая вакансия для соискателя неотличима
// от несуществующей. Без резюме в запросе берется резюме из профиля.
func (s *ApplicationServiceImpl) Apply(actorID string, role models.UserRole, jobID string, req *dto.ApplyRequest) (*models.Application, error) {
	if !auth.CapabilitiesFor(role).CanApply {
		return nil, apperrors.ErrInsufficientPermissions
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.IsActive {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}

	if _, err := s.appRepo.FindByJobAndApplicant(jobID, actorID); err == nil {
		return nil, apperrors.ErrAlreadyApplied
	} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	resume := req.Resume
	if resume == "" {
		applicant, err := s.userRepo.FindByID(actorID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		// Google-аккаунт мог остаться без имени; без имени и email
		// резюме из профиля не подставляется
		if applicant.Name == "" || applicant.Email == "" {
			return nil, apperrors.ErrProfileIncomplete
		}
		if sp := applicant.SeekerProfileOrNil(); sp != nil {
			resume = sp.Resume
		}
	}
	if resume == "" {
		return nil, apperrors.ErrResumeRequired
	}

	app := &models.Application{
		JobID:       jobID,
		ApplicantID: actorID,
		Resume:      resume,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(app); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

// UpdateStatus - смена статуса отклика автором вакансии или ревьюером.
// Переходы между статусами не ограничиваются.
func (s *ApplicationServiceImpl) UpdateStatus(actorID string, role models.UserRole, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	postedBy := ""
	if app.Job != nil {
		postedBy = app.Job.PostedBy
	}
	if !auth.CanReviewApplications(role, actorID, postedBy) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := s.appRepo.UpdateStatus(applicationID, status); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	app.Status = status
	return app, nil
}

func (s *ApplicationServiceImpl) ListMine(applicantID string) ([]models.Application, error) {
	apps, err := s.appRepo.FindByApplicant(applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

func (s *ApplicationServiceImpl) ListForJob(actorID string, role models.UserRole, jobID string) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CanReviewApplications(role, actorID, job.PostedBy) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	apps, err := s.appRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// ListAll - ревьюеры видят все отклики, работодатель только отклики
// на собственные вакансии
func (s *ApplicationServiceImpl) ListAll(actorID string, role models.UserRole, limit, offset int) ([]models.Application, int64, error) {
	caps := auth.CapabilitiesFor(role)
	switch {
	case caps.CanReviewAllApplications:
		apps, total, err := s.appRepo.FindAll(limit, offset)
		if err != nil {
			return nil, 0, apperrors.InternalError(err)
		}
		return apps, total, nil
	case caps.CanPostJobs:
		jobIDs, err := s.jobRepo.FindIDsByPoster(actorID)
		if err != nil {
			return nil, 0, apperrors.InternalError(err)
		}
		apps, err := s.appRepo.FindByJobIDs(jobIDs)
		if err != nil {
			return nil, 0, apperrors.InternalError(err)
		}
		return apps, int64(len(apps)), nil
	}
	return nil, 0, apperrors.ErrInsufficientPermissions
}

func (s *ApplicationServiceImpl) ListForApplicant(role models.UserRole, applicantID string) ([]models.Application, error) {
	if !auth.CapabilitiesFor(role).CanReviewAllApplications {
		return nil, apperrors.ErrInsufficientPermissions
	}

	apps, err := s.appRepo.FindByApplicant(applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// Stats - итого, по дням за неделю и по неделям за месяц
func (s *ApplicationServiceImpl) Stats(actorID string, role models.UserRole, jobID string) (*dto.ApplicationStatsResponse, error) {
	caps := auth.CapabilitiesFor(role)
	if !caps.CanReviewAllApplications && !caps.CanPostJobs {
		return nil, apperrors.ErrInsufficientPermissions
	}

	scoped := !caps.CanReviewAllApplications
	var jobIDs []string

	if jobID != "" {
		job, err := s.jobRepo.FindByID(jobID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrJobNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		if !auth.CanReviewApplications(role, actorID, job.PostedBy) {
			return nil, apperrors.ErrInsufficientPermissions
		}
		scoped = true
		jobIDs = []string{jobID}
	} else if scoped {
		ids, err := s.jobRepo.FindIDsByPoster(actorID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		jobIDs = ids
	}

	total, err := s.appRepo.Count(scoped, jobIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	daily, err := s.appRepo.DailyCounts(statsDailyWindow, scoped, jobIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	weekly, err := s.appRepo.WeeklyCounts(statsWeeklyWindow, scoped, jobIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ApplicationStatsResponse{
		Total:  total,
		Daily:  daily,
		Weekly: weekly,
	}, nil
}
