package handlers

import (
	"net/http"

	"elitejobs_backend/internal/middleware"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/services"
	"elitejobs_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	apps := r.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		// Seeker routes
		apps.GET("/my", middleware.RequireRoles(models.UserRoleJobSeeker), h.GetMyApplications)

		// Poster / reviewer routes
		reviewers := middleware.RequireRoles(
			models.UserRoleJobHoster,
			models.UserRoleRecruiter,
			models.UserRoleAdmin,
			models.UserRoleEliteTeam,
		)
		apps.GET("", reviewers, h.ListApplications)
		apps.GET("/stats", reviewers, h.GetStats)
		apps.PUT("/:applicationId/status", reviewers, h.UpdateStatus)
	}
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, gin.H{"applications": apps, "total": len(apps)})
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, limit := ParsePagination(c)
	apps, total, err := h.applicationService.ListAll(userID, h.ActorRole(c), limit, (page-1)*limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, gin.H{
		"applications": apps,
		"total":        total,
		"page":         page,
		"limit":        limit,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateStatus(
		userID,
		h.ActorRole(c),
		c.Param("applicationId"),
		models.ApplicationStatus(req.Status),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, app)
}

// GetStats - счетчики откликов; ?jobId= сужает до одной вакансии
func (h *ApplicationHandler) GetStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.applicationService.Stats(userID, h.ActorRole(c), c.Query("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, stats)
}
