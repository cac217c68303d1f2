package repositories

import (
	"context"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/store"
)

type TeamRepository interface {
	List(ctx context.Context) ([]models.Team, error)
	ReplaceAll(ctx context.Context, teams []models.Team) error
}

type teamRepository struct {
	store store.Store
}

func NewTeamRepository(s store.Store) TeamRepository {
	return &teamRepository{store: s}
}

func (r *teamRepository) List(ctx context.Context) ([]models.Team, error) {
	return readCollection[models.Team](ctx, r.store, store.KindTeams)
}

func (r *teamRepository) ReplaceAll(ctx context.Context, teams []models.Team) error {
	return writeCollection(ctx, r.store, store.KindTeams, teams)
}
