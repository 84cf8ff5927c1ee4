package response

import (
	"github.com/gin-gonic/gin"
)

// UserPayload is the public projection of a user. The password hash has no
// field here on purpose.
type UserPayload struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// AuthPayload is the success body for register and login.
type AuthPayload struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
}

// Message writes a message-only JSON body, the shape used for every error
// and for simple acknowledgements.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// ValidationFailed writes a 400 with per-field details from the validator.
func ValidationFailed(c *gin.Context, status int, message string, details map[string]string) {
	c.JSON(status, gin.H{"message": message, "errors": details})
}

// Auth writes the register/login success body.
func Auth(c *gin.Context, status int, message, token string, user UserPayload) {
	c.JSON(status, AuthPayload{Message: message, Token: token, User: user})
}
