package handlers

import (
	"net/http"

	"elitejobs_backend/internal/middleware"
	"elitejobs_backend/internal/services"
	"elitejobs_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService    services.AuthService
	profileService services.ProfileService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, profileService services.ProfileService) *AuthHandler {
	return &AuthHandler{
		BaseHandler:    base,
		authService:    authService,
		profileService: profileService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)

		// Сброс пароля по одноразовому коду
		auth.POST("/password/otp", h.RequestOTP)
		auth.POST("/password/verify", h.VerifyOTP)
		auth.POST("/password/reset", h.ResetPassword)
	}

	me := r.Group("/auth")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/me", h.Me)
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusOK, resp)
}

func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req dto.RequestOTPRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordOTP(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	// Ответ одинаков для известного и неизвестного email
	h.RespondMessage(c, http.StatusOK, "If the account exists, a code has been sent")
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.VerifyPasswordOTP(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondMessage(c, http.StatusOK, "Code is valid")
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondMessage(c, http.StatusOK, "Password has been reset")
}

func (h *AuthHandler) Me(c *gin.Context) {
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
