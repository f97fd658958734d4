package models

import "time"

// User - учётная запись любой роли.
// Пара (email, role) уникальна; для jobSeeker email дополнительно
// глобально уникален, это правило держит сервис регистрации.
type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"not null;uniqueIndex:idx_users_email_role" json:"email"`
	Role         UserRole `gorm:"type:varchar(20);not null;uniqueIndex:idx_users_email_role" json:"role"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Profile      Profile  `gorm:"type:jsonb" json:"profile"`

	// Сброс пароля по одноразовому коду
	ResetOTP       string     `json:"-"`
	ResetOTPExp    *time.Time `json:"-"`
	ResetOTPSentAt *time.Time `json:"-"`

	// Внешняя идентификация Google (опционально)
	GoogleID    *string `gorm:"uniqueIndex" json:"-"`
	GoogleToken string  `json:"-"`
}

// IsGoogleLinked - привязан ли аккаунт к Google
func (u *User) IsGoogleLinked() bool {
	return u.GoogleID != nil && *u.GoogleID != ""
}

// CompanyProfileOrNil - вариант работодателя, если он есть
func (u *User) CompanyProfileOrNil() *CompanyProfile {
	return u.Profile.Company
}

// SeekerProfileOrNil - вариант соискателя, если он есть
func (u *User) SeekerProfileOrNil() *SeekerProfile {
	return u.Profile.Seeker
}
