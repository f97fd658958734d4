package services

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"elitejobs_backend/internal/config"
	"elitejobs_backend/internal/imageprocessor"
	"elitejobs_backend/internal/logger"
	"elitejobs_backend/internal/storage"
	"elitejobs_backend/pkg/apperrors"
)

// Виды загружаемых файлов профиля
const (
	FileKindPhoto           = "photo"
	FileKindResume          = "resume"
	FileKindCompanyLogo     = "companyLogo"
	FileKindCompanyDocument = "companyDocument"
)

// FileService принимает multipart-загрузки, проверяет размер и MIME,
// кладет файл в хранилище и прописывает URL в профиль пользователя.
type FileService interface {
	UploadProfileFile(ctx context.Context, userID, kind string, file *multipart.FileHeader) (string, error)
	DeleteCompanyDocument(ctx context.Context, userID, url string) error
}

type FileServiceImpl struct {
	store      storage.Storage
	profileSvc ProfileService
	images     *imageprocessor.Processor
}

func NewFileService(store storage.Storage, profileSvc ProfileService) FileService {
	return &FileServiceImpl{
		store:      store,
		profileSvc: profileSvc,
		images:     imageprocessor.NewProcessor(1600, 85),
	}
}

func (s *FileServiceImpl) UploadProfileFile(ctx context.Context, userID, kind string, file *multipart.FileHeader) (string, error) {
	cfg := config.GetConfig()
	if file.Size > cfg.Upload.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	folder, err := validateKind(kind, contentType)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	// Фото и логотипы ужимаются перед записью
	var body io.Reader = src
	if (kind == FileKindPhoto || kind == FileKindCompanyLogo) && s.images.CanProcess(contentType) {
		body, err = s.images.Normalize(src)
		if err != nil {
			return "", apperrors.ErrInvalidFileType
		}
	}

	key := folder + "/" + uuid.New().String() + sanitizeExt(file.Filename)
	if err := s.store.Save(ctx, key, body, contentType); err != nil {
		return "", apperrors.ErrExternalService(err, "file", "Failed to store file")
	}

	url, err := s.store.GetURL(ctx, key)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	switch kind {
	case FileKindPhoto:
		err = s.profileSvc.SetPhoto(userID, url)
	case FileKindResume:
		err = s.profileSvc.SetResume(userID, url)
	case FileKindCompanyLogo:
		err = s.profileSvc.SetCompanyLogo(userID, url)
	case FileKindCompanyDocument:
		err = s.profileSvc.AddCompanyDocument(userID, url)
	}
	if err != nil {
		return "", err
	}
	return url, nil
}

// DeleteCompanyDocument убирает документ из профиля и из хранилища.
// Сбой удаления объекта логируется и не отменяет операцию.
func (s *FileServiceImpl) DeleteCompanyDocument(ctx context.Context, userID, url string) error {
	if err := s.profileSvc.RemoveCompanyDocument(userID, url); err != nil {
		return err
	}
	if err := s.store.DeleteByURL(ctx, url); err != nil {
		logger.Warn("failed to delete company document from storage", "url", url, "error", err)
	}
	return nil
}

// validateKind сопоставляет вид файла с папкой и допустимым MIME:
// резюме и документы компании - PDF, фото и логотипы - изображения
func validateKind(kind, contentType string) (string, error) {
	switch kind {
	case FileKindResume:
		if contentType != "application/pdf" {
			return "", apperrors.ErrInvalidFileType
		}
		return storage.FolderResumes, nil
	case FileKindCompanyDocument:
		if contentType != "application/pdf" {
			return "", apperrors.ErrInvalidFileType
		}
		return storage.FolderCompanyDocs, nil
	case FileKindPhoto:
		if !strings.HasPrefix(contentType, "image/") {
			return "", apperrors.ErrInvalidFileType
		}
		return storage.FolderPhotos, nil
	case FileKindCompanyLogo:
		if !strings.HasPrefix(contentType, "image/") {
			return "", apperrors.ErrInvalidFileType
		}
		return storage.FolderLogos, nil
	}
	return "", apperrors.ErrInvalidOperation("file", "Unknown file kind")
}

// sanitizeExt оставляет от имени файла только расширение
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 10 {
		return ""
	}
	return ext
}
