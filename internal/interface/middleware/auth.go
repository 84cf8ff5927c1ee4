package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/houssamlaqsir1/finance-app/pkg/helpers"
	"github.com/houssamlaqsir1/finance-app/pkg/response"
)

const CtxUserIDKey = "userID"

// TokenHeader is the raw-token request header the front end sends. It
// predates the service and is kept as an external contract.
const TokenHeader = "x-auth-token"

// Auth verifies the x-auth-token header and injects the user id into the
// Gin context. Invalid and expired tokens collapse to the same 401 body so
// a client learns nothing beyond "re-authenticate".
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			response.Message(c, http.StatusUnauthorized, "No token, authorization denied")
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Message(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
