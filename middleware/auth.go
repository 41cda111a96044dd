package middleware

import (
	"net/http"
	"strings"

	"catering-api/models"
	"catering-api/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer access token and stores the
// account identity on the request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromHeader(c, secret)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Set("account_email", claims.Email)
		c.Set("account_role", claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the account identity when a valid
// token is presented but lets anonymous requests through.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := claimsFromHeader(c, secret); ok {
			c.Set("account_id", claims.AccountID)
			c.Set("account_email", claims.Email)
			c.Set("account_role", claims.Role)
		}
		c.Next()
	}
}

// AdminMiddleware requires AuthMiddleware to have run first.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("account_role")
		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, models.ErrorResponse{Success: false, Message: "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func claimsFromHeader(c *gin.Context, secret string) (*utils.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	claims, err := utils.ValidateToken(secret, tokenString)
	if err != nil || claims.TokenType != utils.TokenTypeAccess {
		return nil, false
	}
	return claims, true
}
