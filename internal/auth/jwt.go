package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"elitejobs_backend/internal/config"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/pkg/apperrors"
)

// Claims - полезная нагрузка токена
type Claims struct {
	UserID string
	Role   models.UserRole
}

// GenerateToken выдает подписанный HS256 токен с userId и role
func GenerateToken(userID string, role models.UserRole) (string, error) {
	cfg := config.GetConfig()

	claims := jwt.MapClaims{
		"userId": userID,
		"role":   string(role),
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Duration(cfg.JWT.TTL) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken разбирает и проверяет токен
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		if apperrors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	userID, _ := claims["userId"].(string)
	roleStr, _ := claims["role"].(string)
	if userID == "" || roleStr == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return &Claims{
		UserID: userID,
		Role:   models.UserRole(roleStr),
	}, nil
}
