package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/linkedin-studio/configs"
	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"github.com/maheshrc27/linkedin-studio/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlatformService struct {
	service.PlatformService
}

func (s *fakePlatformService) GetAuthURL(ctx context.Context, platform, state string) (string, error) {
	if platform != models.PlatformLinkedIn {
		return "", &service.ValidationError{Field: "platform", Message: "is not supported"}
	}
	return "https://www.linkedin.com/oauth/v2/authorization?state=" + url.QueryEscape(state), nil
}

type fakeLinkedInService struct {
	service.LinkedInService
	connected []int64
}

func (s *fakeLinkedInService) LinkedInCallback(ctx context.Context, code string, userID int64) error {
	s.connected = append(s.connected, userID)
	return nil
}

var platformConfig = config.Config{
	SecretKey:   "test-secret",
	CookieName:  "studio_session",
	FrontendURL: "https://app.example.com",
}

func newPlatformApp(li *fakeLinkedInService) *fiber.App {
	h := NewPlatformHandler(&fakePlatformService{}, li, platformConfig)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/auth/:platform", h.AddSocialAccount)
	app.Get("/auth/:platform/callback", h.CallbackHandler)
	return app
}

func sessionCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateToken(platformConfig.SecretKey, userID, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: platformConfig.CookieName, Value: token}
}

// connect starts the LinkedIn flow and returns the state and nonce cookie.
func connect(t *testing.T, app *fiber.App, userID string) (string, *http.Cookie) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/auth/linkedin", nil)
	req.AddCookie(sessionCookie(t, userID))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	require.NotEmpty(t, state)

	for _, c := range resp.Cookies() {
		if c.Name == platformNonceCookie {
			assert.True(t, c.HttpOnly)
			return state, c
		}
	}
	t.Fatal("nonce cookie not set")
	return "", nil
}

func callback(t *testing.T, app *fiber.App, state string, nonce *http.Cookie) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/auth/linkedin/callback?code=abc&state="+url.QueryEscape(state), nil)
	if nonce != nil {
		req.AddCookie(&http.Cookie{Name: nonce.Name, Value: nonce.Value})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestPlatformHandler_ConnectLinkedIn(t *testing.T) {
	li := &fakeLinkedInService{}
	app := newPlatformApp(li)

	state, nonce := connect(t, app, "42")

	_, err := utils.ValidateToken(platformConfig.SecretKey, state)
	assert.Error(t, err, "oauth state must not work as a session token")

	assert.Equal(t, http.StatusTemporaryRedirect, callback(t, app, state, nonce))
	assert.Equal(t, []int64{42}, li.connected)
}

func TestPlatformHandler_CallbackRequiresInitiatingBrowser(t *testing.T) {
	li := &fakeLinkedInService{}
	app := newPlatformApp(li)

	attackerState, _ := connect(t, app, "7")
	_, victimNonce := connect(t, app, "42")

	assert.Equal(t, http.StatusBadRequest, callback(t, app, attackerState, nil))
	assert.Equal(t, http.StatusBadRequest, callback(t, app, attackerState, victimNonce))

	session := sessionCookie(t, "7")
	assert.Equal(t, http.StatusBadRequest, callback(t, app, session.Value, victimNonce))
	assert.Empty(t, li.connected)
}

func TestPlatformHandler_ConnectRequiresSession(t *testing.T) {
	app := newPlatformApp(&fakeLinkedInService{})

	// a session token in the query string is not accepted
	session := sessionCookie(t, "42")
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/auth/linkedin?state="+url.QueryEscape(session.Value), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	state, _ := connect(t, app, "42")
	req := httptest.NewRequest(http.MethodGet, "/auth/linkedin", nil)
	req.AddCookie(&http.Cookie{Name: platformConfig.CookieName, Value: state})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/auth/linkedin", nil)
	req.Header.Set("Authorization", "Bearer "+session.Value)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}
