package repositories

import (
	"context"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/store"
)

type NewsRepository interface {
	List(ctx context.Context) ([]models.NewsPost, error)
	ReplaceAll(ctx context.Context, posts []models.NewsPost) error
}

type newsRepository struct {
	store store.Store
}

func NewNewsRepository(s store.Store) NewsRepository {
	return &newsRepository{store: s}
}

func (r *newsRepository) List(ctx context.Context) ([]models.NewsPost, error) {
	return readCollection[models.NewsPost](ctx, r.store, store.KindNews)
}

func (r *newsRepository) ReplaceAll(ctx context.Context, posts []models.NewsPost) error {
	return writeCollection(ctx, r.store, store.KindNews, posts)
}
