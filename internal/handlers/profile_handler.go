package handlers

import (
	"net/http"

	"elitejobs_backend/internal/middleware"
	"elitejobs_backend/internal/services"
	"elitejobs_backend/internal/services/dto"
	"elitejobs_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService  services.ProfileService
	fileService     services.FileService
	deletionService services.DeletionService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService, fileService services.FileService, deletionService services.DeletionService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:     base,
		profileService:  profileService,
		fileService:     fileService,
		deletionService: deletionService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Справочники открыты: формы регистрации используют их до логина
	r.GET("/profile/options", h.GetOptions)

	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.DELETE("", h.DeleteAccount)
		profile.POST("/files/:kind", h.UploadFile)
		profile.DELETE("/files/companyDocument", h.DeleteCompanyDocument)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.profileService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, user)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ProfileUpdate
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.profileService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, user)
}

// DeleteAccount - каскадное удаление собственного аккаунта:
// файлы, отклики, вакансии, затем сама запись
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.deletionService.DeleteUser(c.Request.Context(), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondMessage(c, http.StatusOK, "Account deleted")
}

// UploadFile - загрузка файла профиля.
// kind: photo, resume, companyLogo, companyDocument
func (h *ProfileHandler) UploadFile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing file field: "+err.Error()))
		return
	}

	url, err := h.fileService.UploadProfileFile(c.Request.Context(), userID, c.Param("kind"), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusCreated, gin.H{"url": url})
}

// DeleteCompanyDocument удаляет документ компании по URL:
// из списка в профиле и из хранилища
func (h *ProfileHandler) DeleteCompanyDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RemoveDocumentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.fileService.DeleteCompanyDocument(c.Request.Context(), userID, req.URL); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondMessage(c, http.StatusOK, "Document deleted")
}

func (h *ProfileHandler) GetOptions(c *gin.Context) {
	h.Respond(c, http.StatusOK, h.profileService.ProfileOptions())
}
