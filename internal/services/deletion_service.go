package services

import (
	"context"

	"elitejobs_backend/internal/logger"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/repositories"
	"elitejobs_backend/internal/storage"
	"elitejobs_backend/pkg/apperrors"
)

// DeletionService - каскадное удаление аккаунта со всеми следами:
// файлы в хранилище, отклики, вакансии с их откликами, сама запись.
type DeletionService interface {
	DeleteUser(ctx context.Context, targetID string) error
}

type DeletionServiceImpl struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
	appRepo  repositories.ApplicationRepository
	store    storage.Storage
}

func NewDeletionService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	store storage.Storage,
) DeletionService {
	return &DeletionServiceImpl{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		store:    store,
	}
}

// DeleteUser удаляет аккаунт каскадно. Ошибки удаления файлов
// логируются и не прерывают каскад: запись о пользователе важнее
// осиротевшего файла.
func (s *DeletionServiceImpl) DeleteUser(ctx context.Context, targetID string) error {
	user, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	s.deleteUserFiles(ctx, user)

	if user.Role == models.UserRoleJobSeeker {
		if err := s.appRepo.DeleteByApplicant(targetID); err != nil {
			return apperrors.InternalError(err)
		}
	} else {
		jobIDs, err := s.jobRepo.FindIDsByPoster(targetID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.appRepo.DeleteByJobIDs(jobIDs); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.jobRepo.DeleteByPoster(targetID); err != nil {
			return apperrors.InternalError(err)
		}
	}

	if err := s.userRepo.Delete(targetID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	logger.Info("user deleted", "user_id", targetID, "role", user.Role)
	return nil
}

func (s *DeletionServiceImpl) deleteUserFiles(ctx context.Context, user *models.User) {
	var urls []string
	if sp := user.SeekerProfileOrNil(); sp != nil {
		urls = append(urls, sp.Photo, sp.Resume)
	}
	if cp := user.CompanyProfileOrNil(); cp != nil {
		urls = append(urls, cp.Photo, cp.CompanyLogo)
		urls = append(urls, cp.CompanyDocument...)
	}

	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := s.store.DeleteByURL(ctx, url); err != nil {
			logger.Warn("failed to delete user file", "user_id", user.ID, "url", url, "error", err)
		}
	}
}
