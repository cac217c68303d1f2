package repositories

import (
	"context"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/store"
)

type PlayerRepository interface {
	List(ctx context.Context) ([]models.Player, error)
	ReplaceAll(ctx context.Context, players []models.Player) error
}

type playerRepository struct {
	store store.Store
}

func NewPlayerRepository(s store.Store) PlayerRepository {
	return &playerRepository{store: s}
}

func (r *playerRepository) List(ctx context.Context) ([]models.Player, error) {
	return readCollection[models.Player](ctx, r.store, store.KindPlayers)
}

func (r *playerRepository) ReplaceAll(ctx context.Context, players []models.Player) error {
	return writeCollection(ctx, r.store, store.KindPlayers, players)
}
