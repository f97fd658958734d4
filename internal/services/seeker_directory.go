package services

import (
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/repositories"
	"elitejobs_backend/internal/services/dto"
	"elitejobs_backend/pkg/apperrors"
)

// SeekerDirectory - каталог соискателей для рекрутеров
type SeekerDirectory interface {
	ListSeekers(search string, limit, offset int) ([]dto.UserResponse, int64, error)
	GetSeeker(seekerID string) (*dto.UserResponse, error)
}

type SeekerDirectoryImpl struct {
	userRepo repositories.UserRepository
}

func NewSeekerDirectory(userRepo repositories.UserRepository) SeekerDirectory {
	return &SeekerDirectoryImpl{userRepo: userRepo}
}

func (s *SeekerDirectoryImpl) ListSeekers(search string, limit, offset int) ([]dto.UserResponse, int64, error) {
	users, total, err := s.userRepo.FindSeekers(search, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *dto.NewUserResponse(&users[i]))
	}
	return result, total, nil
}

func (s *SeekerDirectoryImpl) GetSeeker(seekerID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(seekerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrNotFound(repositories.ErrUserNotFound)
	}
	return dto.NewUserResponse(user), nil
}
