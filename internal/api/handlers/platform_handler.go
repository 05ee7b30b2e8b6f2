package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/linkedin-studio/configs"
	"github.com/maheshrc27/linkedin-studio/internal/models"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"github.com/maheshrc27/linkedin-studio/pkg/utils"
	"go.uber.org/zap"
)

type PlatformHandler struct {
	ps  service.PlatformService
	li  service.LinkedInService
	cfg config.Config
}

func NewPlatformHandler(ps service.PlatformService, li service.LinkedInService, cfg config.Config) *PlatformHandler {
	return &PlatformHandler{
		ps:  ps,
		li:  li,
		cfg: cfg,
	}
}

const (
	platformNonceCookie = "platform_oauth_nonce"
	platformStateTTL    = 10 * time.Minute
)

func parseSubject(userID string) (int64, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid session", service.ErrUnauthorized)
	}
	return id, nil
}

// sessionUser resolves the caller from a bearer token or the session cookie.
func (h *PlatformHandler) sessionUser(c *fiber.Ctx) (int64, error) {
	token := BearerToken(c)
	if token == "" {
		token = c.Cookies(h.cfg.CookieName)
	}
	claims, err := utils.ValidateToken(h.cfg.SecretKey, token)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid session", service.ErrUnauthorized)
	}
	return parseSubject(claims.UserID)
}

func (h *PlatformHandler) AddSocialAccount(c *fiber.Ctx) error {
	userID, err := h.sessionUser(c)
	if err != nil {
		return errorResponse(c, err)
	}

	nonce, err := utils.GenerateRandomKey(16)
	if err != nil {
		return errorResponse(c, err)
	}
	state, err := utils.GenerateStateToken(h.cfg.SecretKey, strconv.FormatInt(userID, 10), nonce, platformStateTTL)
	if err != nil {
		return errorResponse(c, err)
	}

	authURL, err := h.ps.GetAuthURL(c.Context(), c.Params("platform"), state)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     platformNonceCookie,
		Value:    nonce,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/auth",
		Expires:  time.Now().Add(platformStateTTL),
	})
	return c.Redirect(authURL)
}

func (h *PlatformHandler) CallbackHandler(c *fiber.Ctx) error {
	if c.Params("platform") != models.PlatformLinkedIn {
		return errorResponse(c, &service.ValidationError{Field: "platform", Message: "is not supported"})
	}
	nonce := c.Cookies(platformNonceCookie)
	c.Cookie(&fiber.Cookie{Name: platformNonceCookie, Value: "", Path: "/auth", MaxAge: -1})

	if msg := c.Query("error_description"); msg != "" {
		zap.L().Info("linkedin authorization denied", zap.String("reason", msg))
		return c.Redirect(fmt.Sprintf("%s/dashboard/accounts?error=denied", h.cfg.FrontendURL), fiber.StatusTemporaryRedirect)
	}

	claims, err := utils.ValidateStateToken(h.cfg.SecretKey, c.Query("state"), nonce)
	if err != nil {
		zap.L().Info("linkedin callback rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid oauth state",
		})
	}
	userID, err := parseSubject(claims.UserID)
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.li.LinkedInCallback(c.Context(), c.Query("code"), userID); err != nil {
		return errorResponse(c, err)
	}

	redirectURL := fmt.Sprintf("%s/dashboard/accounts", h.cfg.FrontendURL)
	return c.Redirect(redirectURL, fiber.StatusTemporaryRedirect)
}

func (h *PlatformHandler) ListSocialAccounts(c *fiber.Ctx) error {
	accountList, err := h.ps.List(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(accountList)
}

func (h *PlatformHandler) DeleteSocialAccount(c *fiber.Ctx) error {
	accountID := c.QueryInt("id", 0)

	if err := h.ps.Delete(c.Context(), GetUserID(c), int64(accountID)); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
