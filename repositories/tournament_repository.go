package repositories

import (
	"context"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/store"
)

type TournamentRepository interface {
	List(ctx context.Context) ([]models.Tournament, error)
	ReplaceAll(ctx context.Context, tournaments []models.Tournament) error
}

type tournamentRepository struct {
	store store.Store
}

func NewTournamentRepository(s store.Store) TournamentRepository {
	return &tournamentRepository{store: s}
}

func (r *tournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	return readCollection[models.Tournament](ctx, r.store, store.KindTournaments)
}

func (r *tournamentRepository) ReplaceAll(ctx context.Context, tournaments []models.Tournament) error {
	return writeCollection(ctx, r.store, store.KindTournaments, tournaments)
}
