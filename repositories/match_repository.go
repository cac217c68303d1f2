package repositories

import (
	"context"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/store"
)

type MatchRepository interface {
	List(ctx context.Context) ([]models.Match, error)
	ReplaceAll(ctx context.Context, matches []models.Match) error
}

type matchRepository struct {
	store store.Store
}

func NewMatchRepository(s store.Store) MatchRepository {
	return &matchRepository{store: s}
}

func (r *matchRepository) List(ctx context.Context) ([]models.Match, error) {
	return readCollection[models.Match](ctx, r.store, store.KindMatches)
}

func (r *matchRepository) ReplaceAll(ctx context.Context, matches []models.Match) error {
	return writeCollection(ctx, r.store, store.KindMatches, matches)
}
