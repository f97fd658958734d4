package handlers

import (
	"net/http"

	"elitejobs_backend/internal/middleware"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RecruiterHandler - каталог соискателей и их отклики
type RecruiterHandler struct {
	*BaseHandler
	profileService     services.ProfileService
	applicationService services.ApplicationService
	userFinder         services.SeekerDirectory
}

func NewRecruiterHandler(
	base *BaseHandler,
	profileService services.ProfileService,
	applicationService services.ApplicationService,
	userFinder services.SeekerDirectory,
) *RecruiterHandler {
	return &RecruiterHandler{
		BaseHandler:        base,
		profileService:     profileService,
		applicationService: applicationService,
		userFinder:         userFinder,
	}
}

func (h *RecruiterHandler) RegisterRoutes(r *gin.RouterGroup) {
	recruiter := r.Group("/recruiter")
	recruiter.Use(middleware.AuthMiddleware(), middleware.RequireRoles(
		models.UserRoleRecruiter,
		models.UserRoleAdmin,
		models.UserRoleEliteTeam,
	))
	{
		recruiter.GET("/seekers", h.ListSeekers)
		recruiter.GET("/seekers/:seekerId", h.GetSeeker)
		recruiter.GET("/seekers/:seekerId/applications", h.GetSeekerApplications)
	}
}

// ListSeekers - каталог соискателей с поиском по имени и email
func (h *RecruiterHandler) ListSeekers(c *gin.Context) {
	page, limit := ParsePagination(c)

	seekers, total, err := h.userFinder.ListSeekers(c.Query("search"), limit, (page-1)*limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, gin.H{
		"seekers": seekers,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (h *RecruiterHandler) GetSeeker(c *gin.Context) {
	seeker, err := h.userFinder.GetSeeker(c.Param("seekerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, seeker)
}

func (h *RecruiterHandler) GetSeekerApplications(c *gin.Context) {
	apps, err := h.applicationService.ListForApplicant(h.ActorRole(c), c.Param("seekerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, gin.H{"applications": apps, "total": len(apps)})
}
