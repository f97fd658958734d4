package services

import (
	"elitejobs_backend/internal/logger"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/repositories"
	"elitejobs_backend/internal/services/dto"
	"elitejobs_backend/pkg/apperrors"
)

type ProfileService interface {
	GetProfile(userID string) (*dto.UserResponse, error)
	UpdateProfile(userID string, req *dto.ProfileUpdate) (*dto.UserResponse, error)

	// SetPhoto/SetResume/SetCompanyLogo/AddCompanyDocument вызываются
	// после загрузки файла и пишут URL в профиль
	SetPhoto(userID, url string) error
	SetResume(userID, url string) error
	SetCompanyLogo(userID, url string) error
	AddCompanyDocument(userID, url string) error
	RemoveCompanyDocument(userID, url string) error

	// ProfileOptions - справочники для форм профиля
	ProfileOptions() map[string][]string
}

type ProfileServiceImpl struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
}

func NewProfileService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository) ProfileService {
	return &ProfileServiceImpl{
		userRepo: userRepo,
		jobRepo:  jobRepo,
	}
}

func (s *ProfileServiceImpl) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// UpdateProfile - частичное обновление: применяются только поля
// активного варианта профиля, лишние молча игнорируются
func (s *ProfileServiceImpl) UpdateProfile(userID string, req *dto.ProfileUpdate) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	req.Apply(&user.Profile)
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *ProfileServiceImpl) SetPhoto(userID, url string) error {
	return s.mutate(userID, func(user *models.User) error {
		switch {
		case user.Profile.Seeker != nil:
			user.Profile.Seeker.Photo = url
		case user.Profile.Company != nil:
			user.Profile.Company.Photo = url
		default:
			return apperrors.ErrInvalidUserRole
		}
		return nil
	})
}

func (s *ProfileServiceImpl) SetResume(userID, url string) error {
	return s.mutate(userID, func(user *models.User) error {
		if user.Profile.Seeker == nil {
			return apperrors.ErrInvalidUserRole
		}
		user.Profile.Seeker.Resume = url
		return nil
	})
}

// SetCompanyLogo меняет логотип в профиле и пересинхронизирует
// снимки компании во всех вакансиях автора
func (s *ProfileServiceImpl) SetCompanyLogo(userID, url string) error {
	err := s.mutate(userID, func(user *models.User) error {
		if user.Profile.Company == nil {
			return apperrors.ErrInvalidUserRole
		}
		user.Profile.Company.CompanyLogo = url
		return nil
	})
	if err != nil {
		return err
	}

	updated, err := s.jobRepo.UpdateCompanyLogoByPoster(userID, url)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if updated > 0 {
		logger.Info("company logo resynced to jobs", "user_id", userID, "jobs", updated)
	}
	return nil
}

func (s *ProfileServiceImpl) AddCompanyDocument(userID, url string) error {
	return s.mutate(userID, func(user *models.User) error {
		if user.Profile.Company == nil {
			return apperrors.ErrInvalidUserRole
		}
		user.Profile.Company.CompanyDocument = append(user.Profile.Company.CompanyDocument, url)
		return nil
	})
}

// RemoveCompanyDocument убирает URL документа из списка в профиле
func (s *ProfileServiceImpl) RemoveCompanyDocument(userID, url string) error {
	return s.mutate(userID, func(user *models.User) error {
		if user.Profile.Company == nil {
			return apperrors.ErrInvalidUserRole
		}

		docs := user.Profile.Company.CompanyDocument
		kept := make([]string, 0, len(docs))
		found := false
		for _, doc := range docs {
			if doc == url && !found {
				found = true
				continue
			}
			kept = append(kept, doc)
		}
		if !found {
			return apperrors.ErrDocumentNotFound
		}
		user.Profile.Company.CompanyDocument = kept
		return nil
	})
}

func (s *ProfileServiceImpl) ProfileOptions() map[string][]string {
	return map[string][]string{
		"gender":       models.GenderOptions,
		"noticePeriod": models.NoticePeriodOptions,
		"experience":   models.ExperienceOptions,
		"category":     models.CategoryOptions,
		"education":    models.EducationOptions,
	}
}

func (s *ProfileServiceImpl) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *ProfileServiceImpl) mutate(userID string, change func(*models.User) error) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}
	if err := change(user); err != nil {
		return err
	}
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
