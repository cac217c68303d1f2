package repositories

import (
	"context"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/store"
)

type GoalRepository interface {
	List(ctx context.Context) ([]models.Goal, error)
	ReplaceAll(ctx context.Context, goals []models.Goal) error
}

type goalRepository struct {
	store store.Store
}

func NewGoalRepository(s store.Store) GoalRepository {
	return &goalRepository{store: s}
}

func (r *goalRepository) List(ctx context.Context) ([]models.Goal, error) {
	return readCollection[models.Goal](ctx, r.store, store.KindGoals)
}

func (r *goalRepository) ReplaceAll(ctx context.Context, goals []models.Goal) error {
	return writeCollection(ctx, r.store, store.KindGoals, goals)
}
