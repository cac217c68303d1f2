package services

import (
	"context"

	"github.com/amateur-sports/league-system/repositories"
	"github.com/amateur-sports/league-system/utils"
)

// AuthService guards the single admin identity. There are no user accounts:
// one configured password unlocks the admin surface, and the logged-in flag
// is persisted alongside the rest of the data.
type AuthService interface {
	Login(ctx context.Context, password string) error
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) (bool, error)
}

type authService struct {
	authRepo     repositories.AuthRepository
	passwordHash string
}

func NewAuthService(authRepo repositories.AuthRepository, passwordHash string) AuthService {
	return &authService{authRepo: authRepo, passwordHash: passwordHash}
}

func (s *authService) Login(ctx context.Context, password string) error {
	if !utils.CheckPasswordHash(password, s.passwordHash) {
		return ErrInvalidCredentials
	}
	return s.authRepo.SetLoggedIn(ctx)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.authRepo.ClearLoggedIn(ctx)
}

func (s *authService) IsLoggedIn(ctx context.Context) (bool, error) {
	return s.authRepo.IsLoggedIn(ctx)
}
