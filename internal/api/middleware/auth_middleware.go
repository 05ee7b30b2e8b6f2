package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/linkedin-studio/configs"
	"github.com/maheshrc27/linkedin-studio/internal/api/handlers"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"github.com/maheshrc27/linkedin-studio/pkg/utils"
	"go.uber.org/zap"
)

const apiKeyHeader = "X-API-Key"

type AuthMiddleware struct {
	s   service.ApiKeyService
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config, service service.ApiKeyService) *AuthMiddleware {
	return &AuthMiddleware{s: service, cfg: cfg}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
	})
}

// AuthMiddleware accepts an API key (query or header), a bearer token or
// the session cookie, in that order.
func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := c.Query("api_key")
		if apiKey == "" {
			apiKey = c.Get(apiKeyHeader)
		}

		if apiKey != "" {
			userID, err := m.s.GetUserID(c.Context(), apiKey)
			if err != nil {
				return unauthorized(c, "invalid api key")
			}
			c.Locals(handlers.UserIDKey, userID)
			return c.Next()
		}

		tokenString, fromCookie := handlers.BearerToken(c), false
		if tokenString == "" {
			tokenString, fromCookie = c.Cookies(m.cfg.CookieName), true
		}
		if tokenString == "" {
			return unauthorized(c, "missing credentials")
		}

		claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
		if err != nil {
			if fromCookie {
				c.Cookie(&fiber.Cookie{
					Name:   m.cfg.CookieName,
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
			}
			return unauthorized(c, "invalid or expired token")
		}

		userID, err := strconv.ParseInt(claims.UserID, 10, 64)
		if err != nil || userID <= 0 {
			zap.L().Warn("token carries a malformed subject", zap.String("user_id", claims.UserID))
			return unauthorized(c, "invalid or expired token")
		}

		c.Locals(handlers.UserIDKey, userID)
		return c.Next()
	}
}
