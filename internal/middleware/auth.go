package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	iauth "github.com/dmaia/taskboard/internal/auth"
	"github.com/dmaia/taskboard/pkg/errors"
	"github.com/dmaia/taskboard/pkg/response"
)

const (
	CtxClaimsKey = "authClaims"
	CtxUserIDKey = "userID"

	// AuthCookieName is the httponly cookie checked when no Authorization
	// header is present, so browser clients stay logged in across reloads.
	AuthCookieName = "authToken"
)

// Auth enforces JWT authentication using the supplied JWT service. The token
// is read from the Authorization header, falling back to the auth cookie.
func Auth(jwt *iauth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(AuthCookieName); err == nil {
				token = strings.TrimSpace(cookie)
			}
		}

		if token == "" {
			response.Error(c, errors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			// Normalise all validation failures to 401
			c.Header("WWW-Authenticate", "Bearer")
			response.Error(c, errors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(CtxClaimsKey, claims)
		c.Set(CtxUserIDKey, claims.UserID)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authz := c.GetHeader("Authorization")
	if len(authz) < 8 || !strings.EqualFold(authz[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authz[7:])
}
