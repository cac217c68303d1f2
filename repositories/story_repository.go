package repositories

import (
	"context"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/store"
)

type StoryRepository interface {
	List(ctx context.Context) ([]models.MediaStory, error)
	ReplaceAll(ctx context.Context, stories []models.MediaStory) error
}

type storyRepository struct {
	store store.Store
}

func NewStoryRepository(s store.Store) StoryRepository {
	return &storyRepository{store: s}
}

func (r *storyRepository) List(ctx context.Context) ([]models.MediaStory, error) {
	return readCollection[models.MediaStory](ctx, r.store, store.KindStories)
}

func (r *storyRepository) ReplaceAll(ctx context.Context, stories []models.MediaStory) error {
	return writeCollection(ctx, r.store, store.KindStories, stories)
}
