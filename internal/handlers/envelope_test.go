package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elitejobs_backend/internal/services"
	"elitejobs_backend/internal/validator"
)

// Успешные ответы идут в том же конверте, что и ошибочные:
// {success, data|message}
func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewProfileHandler(NewBaseHandler(validator.New()), services.NewProfileService(nil, nil), nil, nil)
	h.RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile/options", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "success")
	assert.JSONEq(t, "true", string(body["success"]))

	var data map[string][]string
	require.NoError(t, json.Unmarshal(body["data"], &data))
	assert.NotEmpty(t, data["gender"])
}

func TestRespondMessageEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	base := NewBaseHandler(validator.New())
	router.GET("/ping", func(c *gin.Context) {
		base.RespondMessage(c, http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "message": "pong"}`, w.Body.String())
}
