package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"elitejobs_backend/internal/config"
	"elitejobs_backend/internal/services"
	"elitejobs_backend/internal/services/dto"
	"elitejobs_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

// OAuthHandler - вход через Google. Включается только при заданных
// client_id и client_secret в конфигурации.
type OAuthHandler struct {
	*BaseHandler
	authService services.AuthService
	oauthConfig *oauth2.Config
}

func NewOAuthHandler(base *BaseHandler, authService services.AuthService) *OAuthHandler {
	cfg := config.GetConfig()

	var oauthConfig *oauth2.Config
	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		oauthConfig = &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: googleEndpoint,
		}
	}

	return &OAuthHandler{
		BaseHandler: base,
		authService: authService,
		oauthConfig: oauthConfig,
	}
}

// Enabled - настроен ли OAuth
func (h *OAuthHandler) Enabled() bool {
	return h.oauthConfig != nil
}

func (h *OAuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	if !h.Enabled() {
		return
	}

	oauth := r.Group("/oauth/google")
	{
		oauth.GET("/login", h.Login)
		oauth.GET("/callback", h.Callback)
		oauth.POST("/complete", h.Complete)
	}
}

// Login отправляет пользователя на страницу согласия Google
func (h *OAuthHandler) Login(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// State живет в куке и сверяется в callback
	c.SetCookie("oauth_state", state, int(10*time.Minute.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthConfig.AuthCodeURL(state))
}

// Callback обменивает код на токен и логинит или предлагает
// завершить регистрацию
func (h *OAuthHandler) Callback(c *gin.Context) {
	stateCookie, err := c.Cookie("oauth_state")
	if err != nil || stateCookie == "" || c.Query("state") != stateCookie {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid OAuth state"))
		return
	}

	code := c.Query("code")
	if code == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing authorization code"))
		return
	}

	token, err := h.oauthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		h.HandleServiceError(c, apperrors.ErrExternalService(err, "oauth", "Failed to exchange authorization code"))
		return
	}

	profile, err := h.fetchProfile(c.Request.Context(), token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, newUser, err := h.authService.LoginWithGoogle(profile)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if newUser {
		// Аккаунта еще нет: клиент выбирает роль и зовет /complete
		h.Respond(c, http.StatusOK, gin.H{
			"newUser":     true,
			"accessToken": token.AccessToken,
			"email":       profile.Email,
			"name":        profile.Name,
		})
		return
	}
	h.Respond(c, http.StatusOK, resp)
}

// Complete - регистрация Google-пользователя с выбранной ролью
func (h *OAuthHandler) Complete(c *gin.Context) {
	var req dto.GoogleCompleteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.fetchProfile(c.Request.Context(), &oauth2.Token{AccessToken: req.AccessToken})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.authService.CompleteGoogleSignup(profile, req.Role, req.Profile)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Respond(c, http.StatusCreated, resp)
}

func (h *OAuthHandler) fetchProfile(ctx context.Context, token *oauth2.Token) (*services.GoogleProfile, error) {
	client := h.oauthConfig.Client(ctx, token)

	resp, err := client.Get(googleUserinfoURL)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "oauth", "Failed to fetch Google profile")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUnauthorizedError("Google rejected the access token")
	}

	var profile services.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, apperrors.ErrExternalService(err, "oauth", "Failed to decode Google profile")
	}
	if profile.ID == "" || profile.Email == "" {
		return nil, apperrors.NewUnauthorizedError("Incomplete Google profile")
	}

	profile.Token = token.AccessToken
	return &profile, nil
}

func randomState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", apperrors.InternalError(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
