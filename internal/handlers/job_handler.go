package handlers

import (
	"net/http"

	"elitejobs_backend/internal/middleware"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/services"
	"elitejobs_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, applicationService services.ApplicationService) *JobHandler {
	return &JobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/jobs")
	{
		public.GET("", h.ListJobs)
		public.GET("/options", h.GetOptions)
		public.GET("/:jobId", h.GetJob)
	}

	// Публикация и управление - все роли, которым разрешено постить;
	// точные права проверяет сервис
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware(), middleware.RequireRoles(
		models.UserRoleJobHoster,
		models.UserRoleRecruiter,
		models.UserRoleAdmin,
		models.UserRoleEliteTeam,
	))
	{
		jobs.POST("", h.CreateJob)
		jobs.GET("/my", h.GetMyJobs)
		jobs.PUT("/:jobId", h.UpdateJob)
		jobs.DELETE("/:jobId", h.DeleteJob)
		jobs.GET("/:jobId/applications", h.GetJobApplications)
	}

	// Отклик подает только соискатель
	apply := r.Group("/jobs")
	apply.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleJobSeeker))
	{
		apply.POST("/:jobId/apply", h.Apply)
	}
}

// --- Public handlers ---

func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	query.Page, query.Limit = ParsePagination(c)

	resp, err := h.jobService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, resp)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.Get(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, job)
}

func (h *JobHandler) GetOptions(c *gin.Context) {
	h.Respond(c, http.StatusOK, h.jobService.JobOptions())
}

// --- Poster handlers ---

func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(userID, h.ActorRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusCreated, job)
}

func (h *JobHandler) GetMyJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListByPoster(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(userID, h.ActorRole(c), c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(userID, h.ActorRole(c), c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondMessage(c, http.StatusOK, "Job deleted")
}

func (h *JobHandler) GetJobApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListForJob(userID, h.ActorRole(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, gin.H{"applications": apps, "total": len(apps)})
}

// --- Seeker handlers ---

func (h *JobHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(userID, h.ActorRole(c), c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusCreated, app)
}
