package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"elitejobs_backend/internal/auth"
	"elitejobs_backend/internal/config"
	"elitejobs_backend/internal/logger"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/pkg/email"
	"elitejobs_backend/internal/repositories"
	"elitejobs_backend/internal/services/dto"
	"elitejobs_backend/pkg/apperrors"
)

const (
	otpTTL            = 15 * time.Minute
	otpResendCooldown = 5 * time.Minute
)

// GoogleProfile - то, что возвращает Google userinfo endpoint
type GoogleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"-"`
}

type AuthService interface {
	Register(req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)

	RequestPasswordOTP(req *dto.RequestOTPRequest) error
	VerifyPasswordOTP(req *dto.VerifyOTPRequest) error
	ResetPassword(req *dto.ResetPasswordRequest) error

	// LoginWithGoogle возвращает (response, newUser, error); newUser=true
	// значит аккаунта еще нет и клиент должен выбрать роль
	LoginWithGoogle(profile *GoogleProfile) (*dto.AuthResponse, bool, error)
	CompleteGoogleSignup(profile *GoogleProfile, role models.UserRole, fragment *dto.ProfileUpdate) (*dto.AuthResponse, error)

	// Управление eliteTeam (только для admin)
	CreateEliteUser(req *dto.CreateEliteUserRequest) (*dto.UserResponse, error)
	ListEliteUsers() ([]dto.UserResponse, error)
	GetEliteUser(id string) (*dto.UserResponse, error)
	UpdateEliteUser(id string, req *dto.UpdateEliteUserRequest) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	sender   email.Sender
}

func NewAuthService(userRepo repositories.UserRepository, sender email.Sender) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		sender:   sender,
	}
}

// Register - самостоятельная регистрация jobSeeker/jobHoster/recruiter
func (s *AuthServiceImpl) Register(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if err := s.checkEmailAvailable(req.Email, req.Role); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: hash,
		Profile:      models.NewProfileForRole(req.Role),
	}
	if req.Profile != nil {
		req.Profile.Apply(&user.Profile)
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Письмо не должно блокировать регистрацию
	go func() {
		if err := s.sender.SendWelcome(user.Email, user.Name, string(user.Role)); err != nil {
			logger.Warn("failed to send welcome email", "email", user.Email, "error", err)
		}
	}()

	return s.authResponse(user)
}

// Login - вход по (email, role, password)
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Role == models.UserRoleAdmin {
		return s.loginAdmin(req)
	}

	user, err := s.userRepo.FindByEmailAndRole(req.Email, req.Role)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// loginAdmin - единственный admin живет в конфигурации: запись в базе
// создается при первом логине и пересинхронизируется при каждом
func (s *AuthServiceImpl) loginAdmin(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	cfg := config.GetConfig()
	if cfg.Admin.Email == "" || req.Email != cfg.Admin.Email || req.Password != cfg.Admin.Password {
		return nil, apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	admin, err := s.userRepo.FindByEmailAndRole(cfg.Admin.Email, models.UserRoleAdmin)
	switch {
	case err == nil:
		admin.Name = cfg.Admin.Name
		admin.PasswordHash = hash
		if err := s.userRepo.Update(admin); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case apperrors.Is(err, repositories.ErrUserNotFound):
		admin = &models.User{
			Name:         cfg.Admin.Name,
			Email:        cfg.Admin.Email,
			Role:         models.UserRoleAdmin,
			PasswordHash: hash,
		}
		if err := s.userRepo.Create(admin); err != nil {
			return nil, apperrors.InternalError(err)
		}
	default:
		return nil, apperrors.InternalError(err)
	}

	return s.authResponse(admin)
}

// RequestPasswordOTP - шлет 6-значный код. Для незнакомого email
// возвращает успех, чтобы не раскрывать наличие аккаунта.
func (s *AuthServiceImpl) RequestPasswordOTP(req *dto.RequestOTPRequest) error {
	user, err := s.userRepo.FindByEmailAndRole(req.Email, req.Role)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			logger.Info("otp requested for unknown account", "email", req.Email, "role", req.Role)
			return nil
		}
		return apperrors.InternalError(err)
	}

	now := time.Now()
	if user.ResetOTPSentAt != nil && now.Sub(*user.ResetOTPSentAt) < otpResendCooldown {
		return apperrors.ErrOTPCooldown
	}

	code, err := generateOTP()
	if err != nil {
		return apperrors.InternalError(err)
	}

	exp := now.Add(otpTTL)
	user.ResetOTP = code
	user.ResetOTPExp = &exp
	user.ResetOTPSentAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	go func() {
		if err := s.sender.SendOTP(user.Email, user.Name, code, int(otpTTL.Minutes())); err != nil {
			logger.Warn("failed to send otp email", "email", user.Email, "error", err)
		}
	}()

	return nil
}

// VerifyPasswordOTP - проверка кода без смены пароля
func (s *AuthServiceImpl) VerifyPasswordOTP(req *dto.VerifyOTPRequest) error {
	user, err := s.userRepo.FindByEmailAndRole(req.Email, req.Role)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrOTPInvalid
		}
		return apperrors.InternalError(err)
	}
	return checkOTP(user, req.OTP)
}

// ResetPassword - смена пароля по действующему коду
func (s *AuthServiceImpl) ResetPassword(req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByEmailAndRole(req.Email, req.Role)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrOTPInvalid
		}
		return apperrors.InternalError(err)
	}

	if err := checkOTP(user, req.OTP); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetOTP = ""
	user.ResetOTPExp = nil
	user.ResetOTPSentAt = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// LoginWithGoogle - вход по внешней идентификации.
// Новому пользователю роль не придумывается: возвращаем newUser=true,
// клиент регистрируется с явно выбранной ролью.
func (s *AuthServiceImpl) LoginWithGoogle(profile *GoogleProfile) (*dto.AuthResponse, bool, error) {
	user, err := s.userRepo.FindByGoogleID(profile.ID)
	if err == nil {
		user.GoogleToken = profile.Token
		if err := s.userRepo.Update(user); err != nil {
			return nil, false, apperrors.InternalError(err)
		}
		resp, err := s.authResponse(user)
		return resp, false, err
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, false, apperrors.InternalError(err)
	}

	// Привязываем Google к существующему аккаунту с тем же email
	candidates, err := s.userRepo.FindByEmail(profile.Email)
	if err != nil {
		return nil, false, apperrors.InternalError(err)
	}
	if len(candidates) > 0 {
		user := &candidates[0]
		googleID := profile.ID
		user.GoogleID = &googleID
		user.GoogleToken = profile.Token
		if err := s.userRepo.Update(user); err != nil {
			return nil, false, apperrors.InternalError(err)
		}
		resp, err := s.authResponse(user)
		return resp, false, err
	}

	return nil, true, nil
}

// CompleteGoogleSignup - завершение регистрации после выбора роли
func (s *AuthServiceImpl) CompleteGoogleSignup(profile *GoogleProfile, role models.UserRole, fragment *dto.ProfileUpdate) (*dto.AuthResponse, error) {
	switch role {
	case models.UserRoleJobSeeker, models.UserRoleJobHoster, models.UserRoleRecruiter:
	default:
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := s.checkEmailAvailable(profile.Email, role); err != nil {
		return nil, err
	}

	googleID := profile.ID
	user := &models.User{
		Name:        profile.Name,
		Email:       profile.Email,
		Role:        role,
		GoogleID:    &googleID,
		GoogleToken: profile.Token,
		Profile:     models.NewProfileForRole(role),
	}
	if fragment != nil {
		fragment.Apply(&user.Profile)
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.authResponse(user)
}

// --- eliteTeam management ---

func (s *AuthServiceImpl) CreateEliteUser(req *dto.CreateEliteUserRequest) (*dto.UserResponse, error) {
	if err := s.checkEmailAvailable(req.Email, models.UserRoleEliteTeam); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         models.UserRoleEliteTeam,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) ListEliteUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindByRole(models.UserRoleEliteTeam)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *dto.NewUserResponse(&users[i]))
	}
	return result, nil
}

func (s *AuthServiceImpl) GetEliteUser(id string) (*dto.UserResponse, error) {
	user, err := s.findEliteUser(id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) UpdateEliteUser(id string, req *dto.UpdateEliteUserRequest) (*dto.UserResponse, error) {
	user, err := s.findEliteUser(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		// Смена email подчиняется тем же правилам уникальности,
		// что и регистрация; собственная запись не считается занятой
		if err := s.checkEmailAvailableExcluding(*req.Email, models.UserRoleEliteTeam, user.ID); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// --- Helper functions ---

// checkEmailAvailable - правила уникальности email.
// Пара (email, role) уникальна всегда; email соискателя дополнительно
// глобально уникален в обе стороны.
func (s *AuthServiceImpl) checkEmailAvailable(emailAddr string, role models.UserRole) error {
	return s.checkEmailAvailableExcluding(emailAddr, role, "")
}

func (s *AuthServiceImpl) checkEmailAvailableExcluding(emailAddr string, role models.UserRole, excludeID string) error {
	existing, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		return apperrors.InternalError(err)
	}

	for i := range existing {
		if excludeID != "" && existing[i].ID == excludeID {
			continue
		}
		if role == models.UserRoleJobSeeker {
			return apperrors.ErrSeekerEmailTaken
		}
		if existing[i].Role == role {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing[i].Role == models.UserRoleJobSeeker {
			return apperrors.ErrSeekerEmailTaken
		}
	}
	return nil
}

func (s *AuthServiceImpl) findEliteUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleEliteTeam {
		return nil, apperrors.ErrNotFound(repositories.ErrUserNotFound)
	}
	return user, nil
}

func (s *AuthServiceImpl) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// generateOTP - 6 случайных цифр
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func checkOTP(user *models.User, code string) error {
	if user.ResetOTP == "" || user.ResetOTP != code {
		return apperrors.ErrOTPInvalid
	}
	if user.ResetOTPExp == nil || time.Now().After(*user.ResetOTPExp) {
		return apperrors.ErrOTPExpired
	}
	return nil
}
