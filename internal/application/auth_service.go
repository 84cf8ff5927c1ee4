package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/houssamlaqsir1/finance-app/internal/domain/entity"
	repo "github.com/houssamlaqsir1/finance-app/internal/domain/repository"
	"github.com/houssamlaqsir1/finance-app/pkg/helpers"
)

// Service orchestrates registration, login, and profile retrieval over the
// credential store, the password hasher, and the token service. It holds no
// per-request state; the only session state is the client-held token.
type Service struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *Service {
	return &Service{Repo: r, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates a user and issues a token for it. The initial GetByEmail
// is advisory; the unique constraint on users.email is what actually guards
// against a concurrent registration with the same address, so a constraint
// violation from Create is translated the same way.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	_, err := s.Repo.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, "", ErrDuplicateEmail
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, "", fmt.Errorf("lookup email: %w", err)
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, "", ErrDuplicateEmail
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return nil, "", err
	}
	return u, token, nil
}

// Login validates email/password and issues a fresh token. An unknown email
// and a wrong password return the identical error to avoid leaking whether
// an account exists.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup email: %w", err)
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return nil, "", err
	}
	return u, token, nil
}

// GetProfile loads the user a verified token points at. ErrUserNotFound
// signals the account was deleted after the token was issued.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return u, nil
}
