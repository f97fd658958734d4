package handlers

import (
	"net/http"

	"elitejobs_backend/internal/middleware"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/services"
	"elitejobs_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler - управление пользователями eliteTeam, каскадное
// удаление аккаунтов и служебные операции над вакансиями
type AdminHandler struct {
	*BaseHandler
	authService     services.AuthService
	jobService      services.JobService
	deletionService services.DeletionService
}

func NewAdminHandler(
	base *BaseHandler,
	authService services.AuthService,
	jobService services.JobService,
	deletionService services.DeletionService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:     base,
		authService:     authService,
		jobService:      jobService,
		deletionService: deletionService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("/elite-users", h.CreateEliteUser)
		admin.GET("/elite-users", h.ListEliteUsers)
		admin.GET("/elite-users/:userId", h.GetEliteUser)
		admin.PUT("/elite-users/:userId", h.UpdateEliteUser)

		admin.DELETE("/users/:userId", h.DeleteUser)

		admin.GET("/jobs/aggregates", h.GetJobAggregates)
		admin.POST("/jobs/resync-logos", h.ResyncLogos)
		admin.POST("/jobs/backfill-verification", h.BackfillVerification)
	}

	// Верификация доступна admin и eliteTeam
	verify := r.Group("/admin")
	verify.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleEliteTeam))
	{
		verify.PUT("/jobs/:jobId/verify", h.VerifyJob)
	}
}

// --- eliteTeam management ---

func (h *AdminHandler) CreateEliteUser(c *gin.Context) {
	var req dto.CreateEliteUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.CreateEliteUser(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusCreated, user)
}

func (h *AdminHandler) ListEliteUsers(c *gin.Context) {
	users, err := h.authService.ListEliteUsers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, gin.H{"users": users, "total": len(users)})
}

func (h *AdminHandler) GetEliteUser(c *gin.Context) {
	user, err := h.authService.GetEliteUser(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, user)
}

func (h *AdminHandler) UpdateEliteUser(c *gin.Context) {
	var req dto.UpdateEliteUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.UpdateEliteUser(c.Param("userId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, user)
}

// DeleteUser - каскадное удаление аккаунта со всеми вакансиями,
// откликами и файлами
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.deletionService.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondMessage(c, http.StatusOK, "User deleted")
}

// --- Job maintenance ---

func (h *AdminHandler) VerifyJob(c *gin.Context) {
	var req dto.VerifyJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Verify(h.ActorRole(c), c.Param("jobId"), req.VerificationStatus)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, job)
}

func (h *AdminHandler) GetJobAggregates(c *gin.Context) {
	aggregates, err := h.jobService.Aggregates()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, aggregates)
}

func (h *AdminHandler) ResyncLogos(c *gin.Context) {
	updated, err := h.jobService.ResyncCompanyLogos()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, gin.H{"jobsUpdated": updated})
}

func (h *AdminHandler) BackfillVerification(c *gin.Context) {
	updated, err := h.jobService.BackfillVerificationStatus()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, gin.H{"jobsUpdated": updated})
}
