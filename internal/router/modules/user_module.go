package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/houssamlaqsir1/finance-app/internal/container"
	handlers "github.com/houssamlaqsir1/finance-app/internal/interface/http"
	"github.com/houssamlaqsir1/finance-app/internal/interface/middleware"
	"github.com/houssamlaqsir1/finance-app/pkg/helpers"
)

// UserModule wires the token-protected profile endpoint.
// GET /api/user
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP()))
	{
		auth.GET("/user", m.Handler.GetCurrentUser)
	}
}
