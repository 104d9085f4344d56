package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/agrolink/farm_market/internal/hash"
	"github.com/agrolink/farm_market/internal/models"
	"github.com/agrolink/farm_market/internal/repo"
	"github.com/agrolink/farm_market/internal/tokens"
	"github.com/agrolink/farm_market/internal/transport"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || req.Name == "" {
		return nil, "", fmt.Errorf("%w: email, password and name required", ErrValidation)
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, "", fmt.Errorf("%w: role must be farmer or vendor", ErrValidation)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: pwHash,
		Name:         req.Name,
		Role:         role,
		Location:     req.Location,
		Phone:        req.Phone,
	}

	if err := s.Repo.CreateUserIfNotExists(ctx, user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			return nil, "", fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, "", err
	}

	token, err := tokens.Sign(user.ID, user.Email, user.Role, s.JWTSecret)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password required", ErrValidation)
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if repo.NotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := tokens.Sign(user.ID, user.Email, user.Role, s.JWTSecret)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
