package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// AuthService validates the single admin account guarding the league
// management endpoints. Credentials come from configuration; there is no
// user store.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) error
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authService struct {
	adminEmail        string
	adminPasswordHash []byte
}

func NewAuthService(adminEmail, adminPassword string) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authService{
		adminEmail:        adminEmail,
		adminPasswordHash: hash,
	}, nil
}

func (s *authService) Login(ctx context.Context, input LoginInput) error {
	if input.Email != s.adminEmail {
		// Same cost whether the email or the password is wrong.
		bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(input.Password))
		return ErrAuthInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(input.Password)); err != nil {
		return ErrAuthInvalidCredentials
	}
	return nil
}
