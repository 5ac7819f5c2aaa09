package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
	"github.com/abigaildinucci5-hue/tp-final-sub001/response"
	"github.com/abigaildinucci5-hue/tp-final-sub001/services"
)

// AuthMiddleware valida el access token y, si se pasan roles, exige que el
// usuario tenga alguno. Un token vencido responde TOKEN_EXPIRADO para que
// el cliente haga exactamente un intento de refresh antes de cortar.
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := services.ParseAccessToken(tokenString)
		if err != nil {
			if apperrors.HasCode(err, apperrors.ErrCodeTokenExpired) {
				response.TokenExpired(c)
			} else {
				response.Unauthorized(c)
			}
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == claims.UserInfo.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", claims.UserInfo.UserId)
		c.Set("userRole", claims.UserInfo.Role)
		c.Set("sessionID", claims.SessionID)
		c.Next()
	}
}
