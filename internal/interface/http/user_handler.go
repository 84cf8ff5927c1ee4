package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/houssamlaqsir1/finance-app/internal/application"
	"github.com/houssamlaqsir1/finance-app/internal/interface/middleware"
	"github.com/houssamlaqsir1/finance-app/pkg/response"
)

type UserHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// GetCurrentUser handles GET /api/user. Token verification happens in the
// auth middleware; by the time this runs the context carries a user id.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)

	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("profile lookup failed")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, response.UserPayload{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	})
}
