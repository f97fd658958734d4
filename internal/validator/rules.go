package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"elitejobs_backend/internal/models"
)

// registerCustomRules регистрирует кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"is-user-role":           validateUserRole,
		"is-signup-role":         validateSignupRole,
		"is-application-status":  validateApplicationStatus,
		"is-verification-status": validateVerificationStatus,
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register tag '%s': %w", tag, err)
		}
	}
	return nil
}

// --- Функции валидации ---

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения - дело 'required'
	}
	return models.IsValidRole(models.UserRole(value))
}

// Самостоятельная регистрация открыта не для всех ролей:
// admin создается из конфигурации, eliteTeam - админом.
func validateSignupRole(fl validator.FieldLevel) bool {
	switch models.UserRole(fl.Field().String()) {
	case models.UserRoleJobSeeker, models.UserRoleJobHoster, models.UserRoleRecruiter:
		return true
	}
	return false
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidApplicationStatus(models.ApplicationStatus(value))
}

func validateVerificationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return value == models.VerificationStatusVerified || value == models.VerificationStatusNotVerified
}
