package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/houssamlaqsir1/finance-app/internal/application"
	"github.com/houssamlaqsir1/finance-app/pkg/response"
	"github.com/houssamlaqsir1/finance-app/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Invalid request payload", validation.ToDetails(err))
		return
	}

	u, token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrDuplicateEmail) {
			response.Message(c, http.StatusBadRequest, "User already exists")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("registration failed")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Auth(c, http.StatusCreated, "User registered successfully", token, response.UserPayload{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Invalid request payload", validation.ToDetails(err))
		return
	}

	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Message(c, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("login failed")
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.Auth(c, http.StatusOK, "Login successful", token, response.UserPayload{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	})
}
