package router

import (
	"github.com/houssamlaqsir1/finance-app/internal/application"
	"github.com/houssamlaqsir1/finance-app/internal/container"
	pginfra "github.com/houssamlaqsir1/finance-app/internal/infrastructure/postgres"
	handlers "github.com/houssamlaqsir1/finance-app/internal/interface/http"
	"github.com/houssamlaqsir1/finance-app/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewService(repo, container.GetJWT(), container.GetLogger())

	authHandler := handlers.NewAuthHandler(svc, container.GetLogger())
	userHandler := handlers.NewUserHandler(svc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
}
