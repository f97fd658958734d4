package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elitejobs_backend/internal/auth"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/services/dto"
	"elitejobs_backend/pkg/apperrors"
)

func newAuthFixture() (AuthService, *fakeUserRepo, *fakeSender) {
	setupTestConfig()
	userRepo := newFakeUserRepo()
	sender := newFakeSender()
	return NewAuthService(userRepo, sender), userRepo, sender
}

func seedUser(repo *fakeUserRepo, email string, role models.UserRole, password string) *models.User {
	hash, _ := auth.HashPassword(password)
	return repo.add(&models.User{
		Name:         "Seed User",
		Email:        email,
		Role:         role,
		PasswordHash: hash,
		Profile:      models.NewProfileForRole(role),
	})
}

func TestRegister_Success(t *testing.T) {
	svc, _, _ := newAuthFixture()

	resp, err := svc.Register(&dto.SignupRequest{
		Name:     "Hoster",
		Email:    "hoster@example.com",
		Password: "secret123",
		Role:     models.UserRoleJobHoster,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.UserRoleJobHoster, resp.User.Role)
	assert.NotNil(t, resp.User.Profile.Company)
}

func TestRegister_SameEmailDifferentRoles(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	seedUser(repo, "dual@example.com", models.UserRoleJobHoster, "secret123")

	// Тот же email с другой не-seeker ролью проходит
	_, err := svc.Register(&dto.SignupRequest{
		Name:     "Recruiter",
		Email:    "dual@example.com",
		Password: "secret123",
		Role:     models.UserRoleRecruiter,
	})
	require.NoError(t, err)

	// Повтор той же пары (email, role) - конфликт
	_, err = svc.Register(&dto.SignupRequest{
		Name:     "Recruiter 2",
		Email:    "dual@example.com",
		Password: "secret123",
		Role:     models.UserRoleRecruiter,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_SeekerEmailIsExclusive(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	seedUser(repo, "seeker@example.com", models.UserRoleJobSeeker, "secret123")

	// Email соискателя закрыт для любых других ролей
	_, err := svc.Register(&dto.SignupRequest{
		Name:     "Hoster",
		Email:    "seeker@example.com",
		Password: "secret123",
		Role:     models.UserRoleJobHoster,
	})
	assert.ErrorIs(t, err, apperrors.ErrSeekerEmailTaken)

	// И наоборот: занятый email нельзя взять под seeker-аккаунт
	seedUser(repo, "hoster@example.com", models.UserRoleJobHoster, "secret123")
	_, err = svc.Register(&dto.SignupRequest{
		Name:     "Seeker",
		Email:    "hoster@example.com",
		Password: "secret123",
		Role:     models.UserRoleJobSeeker,
	})
	assert.ErrorIs(t, err, apperrors.ErrSeekerEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	seedUser(repo, "seeker@example.com", models.UserRoleJobSeeker, "secret123")

	resp, err := svc.Login(&dto.LoginRequest{
		Email:    "seeker@example.com",
		Password: "secret123",
		Role:     models.UserRoleJobSeeker,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPasswordAndWrongRole(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	seedUser(repo, "seeker@example.com", models.UserRoleJobSeeker, "secret123")

	_, err := svc.Login(&dto.LoginRequest{
		Email:    "seeker@example.com",
		Password: "wrong",
		Role:     models.UserRoleJobSeeker,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Аккаунт есть, но под другой ролью - тоже invalid credentials
	_, err = svc.Login(&dto.LoginRequest{
		Email:    "seeker@example.com",
		Password: "secret123",
		Role:     models.UserRoleJobHoster,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_AdminCreatedLazilyFromConfig(t *testing.T) {
	svc, repo, _ := newAuthFixture()

	// Первый логин создает запись admin
	resp, err := svc.Login(&dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "admin-password",
		Role:     models.UserRoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, resp.User.Role)

	admins, _ := repo.FindByRole(models.UserRoleAdmin)
	require.Len(t, admins, 1)

	// Повторный логин не плодит дубликаты
	_, err = svc.Login(&dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "admin-password",
		Role:     models.UserRoleAdmin,
	})
	require.NoError(t, err)
	admins, _ = repo.FindByRole(models.UserRoleAdmin)
	assert.Len(t, admins, 1)
}

func TestLogin_AdminRejectsForeignEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Login(&dto.LoginRequest{
		Email:    "someone@example.com",
		Password: "admin-password",
		Role:     models.UserRoleAdmin,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestPasswordOTP_FullFlow(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	user := seedUser(repo, "seeker@example.com", models.UserRoleJobSeeker, "secret123")

	err := svc.RequestPasswordOTP(&dto.RequestOTPRequest{
		Email: "seeker@example.com",
		Role:  models.UserRoleJobSeeker,
	})
	require.NoError(t, err)

	stored, _ := repo.FindByID(user.ID)
	require.Len(t, stored.ResetOTP, 6)

	err = svc.VerifyPasswordOTP(&dto.VerifyOTPRequest{
		Email: "seeker@example.com",
		Role:  models.UserRoleJobSeeker,
		OTP:   stored.ResetOTP,
	})
	require.NoError(t, err)

	err = svc.ResetPassword(&dto.ResetPasswordRequest{
		Email:       "seeker@example.com",
		Role:        models.UserRoleJobSeeker,
		OTP:         stored.ResetOTP,
		NewPassword: "newsecret",
	})
	require.NoError(t, err)

	// Старый пароль больше не подходит, новый работает, код сброшен
	_, err = svc.Login(&dto.LoginRequest{Email: "seeker@example.com", Password: "secret123", Role: models.UserRoleJobSeeker})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(&dto.LoginRequest{Email: "seeker@example.com", Password: "newsecret", Role: models.UserRoleJobSeeker})
	assert.NoError(t, err)

	stored, _ = repo.FindByID(user.ID)
	assert.Empty(t, stored.ResetOTP)
}

func TestPasswordOTP_UnknownEmailIsSilent(t *testing.T) {
	svc, _, sender := newAuthFixture()

	err := svc.RequestPasswordOTP(&dto.RequestOTPRequest{
		Email: "nobody@example.com",
		Role:  models.UserRoleJobSeeker,
	})

	assert.NoError(t, err)
	assert.Empty(t, sender.otps)
}

func TestPasswordOTP_ResendCooldown(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	seedUser(repo, "seeker@example.com", models.UserRoleJobSeeker, "secret123")

	req := &dto.RequestOTPRequest{Email: "seeker@example.com", Role: models.UserRoleJobSeeker}
	require.NoError(t, svc.RequestPasswordOTP(req))

	err := svc.RequestPasswordOTP(req)
	assert.ErrorIs(t, err, apperrors.ErrOTPCooldown)
}

func TestPasswordOTP_WrongAndExpiredCode(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	user := seedUser(repo, "seeker@example.com", models.UserRoleJobSeeker, "secret123")

	require.NoError(t, svc.RequestPasswordOTP(&dto.RequestOTPRequest{
		Email: "seeker@example.com",
		Role:  models.UserRoleJobSeeker,
	}))

	err := svc.VerifyPasswordOTP(&dto.VerifyOTPRequest{
		Email: "seeker@example.com",
		Role:  models.UserRoleJobSeeker,
		OTP:   "000000",
	})
	if !assert.ErrorIs(t, err, apperrors.ErrOTPInvalid) {
		// Сгенерированный код совпал с 000000 - крайне маловероятно
		t.Log("generated code collided with test value")
	}

	// Просроченный код
	stored, _ := repo.FindByID(user.ID)
	expired := time.Now().Add(-time.Minute)
	stored.ResetOTPExp = &expired
	require.NoError(t, repo.Update(stored))

	err = svc.VerifyPasswordOTP(&dto.VerifyOTPRequest{
		Email: "seeker@example.com",
		Role:  models.UserRoleJobSeeker,
		OTP:   stored.ResetOTP,
	})
	assert.ErrorIs(t, err, apperrors.ErrOTPExpired)
}

func TestLoginWithGoogle_LinksExistingAccountByEmail(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	user := seedUser(repo, "seeker@example.com", models.UserRoleJobSeeker, "secret123")

	resp, newUser, err := svc.LoginWithGoogle(&GoogleProfile{
		ID:    "google-1",
		Email: "seeker@example.com",
		Name:  "Seeker",
		Token: "tok",
	})

	require.NoError(t, err)
	assert.False(t, newUser)
	assert.Equal(t, user.ID, resp.User.ID)

	stored, _ := repo.FindByID(user.ID)
	require.NotNil(t, stored.GoogleID)
	assert.Equal(t, "google-1", *stored.GoogleID)
}

func TestLoginWithGoogle_UnknownUserNeedsSignup(t *testing.T) {
	svc, _, _ := newAuthFixture()

	resp, newUser, err := svc.LoginWithGoogle(&GoogleProfile{
		ID:    "google-2",
		Email: "fresh@example.com",
	})

	require.NoError(t, err)
	assert.True(t, newUser)
	assert.Nil(t, resp)
}

func TestCompleteGoogleSignup(t *testing.T) {
	svc, _, _ := newAuthFixture()
	profile := &GoogleProfile{ID: "google-3", Email: "fresh@example.com", Name: "Fresh"}

	resp, err := svc.CompleteGoogleSignup(profile, models.UserRoleJobSeeker, nil)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleJobSeeker, resp.User.Role)

	// Роли admin и eliteTeam через Google не создаются
	_, err = svc.CompleteGoogleSignup(&GoogleProfile{ID: "google-4", Email: "other@example.com"}, models.UserRoleAdmin, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestEliteUserManagement(t *testing.T) {
	svc, _, _ := newAuthFixture()

	created, err := svc.CreateEliteUser(&dto.CreateEliteUserRequest{
		Name:     "Elite",
		Email:    "elite@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleEliteTeam, created.Role)

	list, err := svc.ListEliteUsers()
	require.NoError(t, err)
	require.Len(t, list, 1)

	newName := "Elite Renamed"
	updated, err := svc.UpdateEliteUser(created.ID, &dto.UpdateEliteUserRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)

	// Логин обновленного elite-пользователя продолжает работать
	_, err = svc.Login(&dto.LoginRequest{
		Email:    "elite@example.com",
		Password: "secret123",
		Role:     models.UserRoleEliteTeam,
	})
	assert.NoError(t, err)
}

func TestUpdateEliteUser_EmailUniqueness(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	seedUser(repo, "seeker@example.com", models.UserRoleJobSeeker, "secret123")

	created, err := svc.CreateEliteUser(&dto.CreateEliteUserRequest{
		Name:     "Elite",
		Email:    "elite@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Email соискателя закрыт и при смене email elite-аккаунта
	taken := "seeker@example.com"
	_, err = svc.UpdateEliteUser(created.ID, &dto.UpdateEliteUserRequest{Email: &taken})
	assert.ErrorIs(t, err, apperrors.ErrSeekerEmailTaken)

	// Собственный текущий email занятым не считается
	same := "elite@example.com"
	_, err = svc.UpdateEliteUser(created.ID, &dto.UpdateEliteUserRequest{Email: &same})
	assert.NoError(t, err)

	// Email другого elite-пользователя - конфликт
	second, err := svc.CreateEliteUser(&dto.CreateEliteUserRequest{
		Name:     "Elite Two",
		Email:    "elite2@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	first := "elite@example.com"
	_, err = svc.UpdateEliteUser(second.ID, &dto.UpdateEliteUserRequest{Email: &first})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestGetEliteUser_OtherRoleHidden(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	user := seedUser(repo, "seeker@example.com", models.UserRoleJobSeeker, "secret123")

	_, err := svc.GetEliteUser(user.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
