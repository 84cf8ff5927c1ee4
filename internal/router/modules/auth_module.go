package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/houssamlaqsir1/finance-app/internal/container"
	handlers "github.com/houssamlaqsir1/finance-app/internal/interface/http"
	"github.com/houssamlaqsir1/finance-app/internal/interface/middleware"
)

// AuthModule wires the public credential endpoints.
// POST /api/auth/register, POST /api/auth/login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Per-IP limits keep credential stuffing slow without touching the store.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
