package repositories

import (
	"context"
	"fmt"

	"github.com/amateur-sports/league-system/store"
)

// authFlagDoc is the JSON document persisted while an admin is logged in.
const authFlagDoc = `"true"`

// AuthRepository tracks the single admin-session flag.
type AuthRepository interface {
	IsLoggedIn(ctx context.Context) (bool, error)
	SetLoggedIn(ctx context.Context) error
	ClearLoggedIn(ctx context.Context) error
}

type authRepository struct {
	store store.Store
}

func NewAuthRepository(s store.Store) AuthRepository {
	return &authRepository{store: s}
}

func (r *authRepository) IsLoggedIn(ctx context.Context) (bool, error) {
	doc, err := r.store.Read(ctx, store.KindAuth)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", store.KindAuth, err)
	}
	return string(doc) == authFlagDoc, nil
}

func (r *authRepository) SetLoggedIn(ctx context.Context) error {
	return r.store.Write(ctx, store.KindAuth, []byte(authFlagDoc))
}

func (r *authRepository) ClearLoggedIn(ctx context.Context) error {
	return r.store.Delete(ctx, store.KindAuth)
}
