package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/usersystem/internal/pkg/auth"
)

const (
	// UserIDContextKey is a gin context key for authenticated user identifier.
	UserIDContextKey = "userID"
	authCookieName   = "usersystem_token"
	bearerPrefix     = "bearer "
	challenge        = `Bearer realm="usersystem"`
)

// TokenParser resolves a user identifier from a bearer token.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AuthRequired rejects requests without a valid bearer token or auth cookie.
// A rejected cookie is cleared so the client stops sending it.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, fromCookie := extractToken(c)
		if token == "" {
			unauthorized(c, false)
			return
		}

		userID, err := parser.ParseToken(token)
		switch {
		case err == nil:
		case errors.Is(err, pkgAuth.ErrInvalidToken):
			unauthorized(c, fromCookie)
			return
		default:
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, clearCookie bool) {
	if clearCookie {
		c.SetCookie(authCookieName, "", -1, "/", "", false, true)
	}
	c.Header("WWW-Authenticate", challenge)
	c.AbortWithStatus(http.StatusUnauthorized)
}

// extractToken prefers the Authorization header and falls back to the auth cookie.
func extractToken(c *gin.Context) (token string, fromCookie bool) {
	header := c.GetHeader("Authorization")
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):]), false
	}

	if cookie, err := c.Cookie(authCookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

// SetAuthCookie hands the token to the client as both a cookie and a header.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
