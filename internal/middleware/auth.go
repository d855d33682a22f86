package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/winhire/interview-engine/internal/config"
	"github.com/winhire/interview-engine/internal/domain/identity"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextActor    = "actor"
)

// AuthMiddleware accepts HS256 bearer tokens carrying "sub" (user id) and
// "role" claims.
func AuthMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok || userID <= 0 {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}
		role, _ := claims["role"].(string)

		actor := identity.Actor{UserID: uint(userID), Role: identity.Role(role)}
		c.Set(ContextUserID, actor.UserID)
		c.Set(ContextUserRole, role)
		c.Set(ContextActor, actor)

		c.Next()
	}
}

// ActorFrom returns the authenticated caller. It is the zero Actor on
// routes without AuthMiddleware.
func ActorFrom(c *gin.Context) identity.Actor {
	if v, ok := c.Get(ContextActor); ok {
		if actor, ok := v.(identity.Actor); ok {
			return actor
		}
	}
	return identity.Actor{}
}

func abortUnauthorized(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error_code": code,
		"message":    "authentication required",
	})
}
