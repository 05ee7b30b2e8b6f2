package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/linkedin-studio/configs"
	"github.com/maheshrc27/linkedin-studio/internal/api/handlers"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"github.com/maheshrc27/linkedin-studio/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApiKeyService struct {
	service.ApiKeyService
	keys map[string]int64
}

func (s *fakeApiKeyService) GetUserID(ctx context.Context, apiKey string) (int64, error) {
	if id, ok := s.keys[apiKey]; ok {
		return id, nil
	}
	return 0, service.ErrUnauthorized
}

var testConfig = config.Config{SecretKey: "test-secret", CookieName: "studio_session"}

func newApp() *fiber.App {
	m := NewAuthMiddleware(testConfig, &fakeApiKeyService{keys: map[string]int64{"key-1": 11}})

	app := fiber.New()
	app.Use(m.AuthMiddleware())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(strconv.FormatInt(handlers.GetUserID(c), 10))
	})
	return app
}

func whoami(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	token, err := utils.GenerateToken(testConfig.SecretKey, "42", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	status, body := whoami(t, newApp(), req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "42", body)
}

func TestAuthMiddleware_Cookie(t *testing.T) {
	token, err := utils.GenerateToken(testConfig.SecretKey, "7", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testConfig.CookieName, Value: token})

	status, body := whoami(t, newApp(), req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "7", body)
}

func TestAuthMiddleware_ApiKey(t *testing.T) {
	app := newApp()

	status, body := whoami(t, app, httptest.NewRequest(http.MethodGet, "/whoami?api_key=key-1", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "11", body)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-API-Key", "key-1")
	status, body = whoami(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "11", body)

	status, _ = whoami(t, app, httptest.NewRequest(http.MethodGet, "/whoami?api_key=nope", nil))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	app := newApp()

	status, _ := whoami(t, app, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, status)

	expired, err := utils.GenerateToken(testConfig.SecretKey, "42", -time.Minute)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	status, _ = whoami(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, status)

	forged, err := utils.GenerateToken("other-secret", "42", time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	status, _ = whoami(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, status)

	bogus, err := utils.GenerateToken(testConfig.SecretKey, "not-a-number", time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+bogus)
	status, _ = whoami(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthMiddleware_RejectsOAuthState(t *testing.T) {
	app := newApp()

	state, err := utils.GenerateStateToken(testConfig.SecretKey, "42", "nonce-1", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+state)
	status, _ := whoami(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, status)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testConfig.CookieName, Value: state})
	status, _ = whoami(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, status)
}
