package middleware

import (
	"net/http"

	jwtsvc "guesthouse/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the httpOnly cookie carrying the session token.
const AccessTokenCookie = "access_token"

// JWTAuth guards protected routes. A missing cookie is unauthenticated
// (401); a cookie that fails signature or expiry checks is forbidden (403).
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(AccessTokenCookie)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "AUTH_MISSING",
					"message": "You are not authenticated",
				},
			})
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "AUTH_INVALID",
					"message": "Token is not valid",
				},
			})
			return
		}

		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
