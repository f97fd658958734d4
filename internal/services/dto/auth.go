package dto

import (
	"time"

	"elitejobs_backend/internal/models"
)

// SignupRequest - самостоятельная регистрация.
// Роли admin и eliteTeam через этот путь не проходят.
type SignupRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"required,is-signup-role"`
	Profile  *ProfileUpdate  `json:"profile"`
}

// LoginRequest - вход; роль обязательна, так как один email
// может держать несколько аккаунтов
type LoginRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
	Role     models.UserRole `json:"role" validate:"required,is-user-role"`
}

// UserResponse - пользователь без чувствительных полей
type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	Profile   models.Profile  `json:"profile"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewUserResponse собирает ответ из модели
func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Profile:   u.Profile,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse - токен и пользователь; регистрация сразу логинит
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// RequestOTPRequest - запрос кода сброса пароля
type RequestOTPRequest struct {
	Email string          `json:"email" validate:"required,email"`
	Role  models.UserRole `json:"role" validate:"required,is-user-role"`
}

// VerifyOTPRequest - проверка кода без смены пароля
type VerifyOTPRequest struct {
	Email string          `json:"email" validate:"required,email"`
	Role  models.UserRole `json:"role" validate:"required,is-user-role"`
	OTP   string          `json:"otp" validate:"required,len=6"`
}

// ResetPasswordRequest - смена пароля по коду
type ResetPasswordRequest struct {
	Email       string          `json:"email" validate:"required,email"`
	Role        models.UserRole `json:"role" validate:"required,is-user-role"`
	OTP         string          `json:"otp" validate:"required,len=6"`
	NewPassword string          `json:"newPassword" validate:"required,min=6"`
}

// GoogleCompleteRequest - завершение регистрации через Google:
// клиент возвращает access token и выбранную роль
type GoogleCompleteRequest struct {
	AccessToken string          `json:"accessToken" validate:"required"`
	Role        models.UserRole `json:"role" validate:"required,is-signup-role"`
	Profile     *ProfileUpdate  `json:"profile"`
}

// CreateEliteUserRequest - админ заводит пользователя eliteTeam
type CreateEliteUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateEliteUserRequest - частичное обновление; nil поля не трогаются
type UpdateEliteUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}
