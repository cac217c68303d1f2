package services

import (
	"context"
	"time"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/repositories"
	"github.com/amateur-sports/league-system/utils"
)

type CreateNewsInput struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

type NewsService interface {
	// List returns the feed, newest first.
	List(ctx context.Context) ([]models.NewsPost, error)
	Create(ctx context.Context, input CreateNewsInput) (*models.NewsPost, error)
	Delete(ctx context.Context, id string) error
	// Like increments the post's like counter. Spectator-facing; no
	// identity is attached, repeated likes all count.
	Like(ctx context.Context, id string) (*models.NewsPost, error)
}

type newsService struct {
	newsRepo repositories.NewsRepository
	now      func() time.Time
}

func NewNewsService(newsRepo repositories.NewsRepository) NewsService {
	return &newsService{newsRepo: newsRepo, now: time.Now}
}

func (s *newsService) List(ctx context.Context) ([]models.NewsPost, error) {
	posts, err := s.newsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(posts)-1; i < j; i, j = i+1, j-1 {
		posts[i], posts[j] = posts[j], posts[i]
	}
	return posts, nil
}

func (s *newsService) Create(ctx context.Context, input CreateNewsInput) (*models.NewsPost, error) {
	if input.Caption == "" {
		return nil, validationError(ErrCaptionRequired)
	}

	posts, err := s.newsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	post := models.NewsPost{
		ID:        utils.NewID(),
		Image:     input.Image,
		Caption:   input.Caption,
		CreatedAt: s.now(),
	}
	if err := s.newsRepo.ReplaceAll(ctx, append(posts, post)); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *newsService) Delete(ctx context.Context, id string) error {
	posts, err := s.newsRepo.List(ctx)
	if err != nil {
		return err
	}
	remaining := posts[:0]
	found := false
	for _, p := range posts {
		if p.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, p)
	}
	if !found {
		return unknownReferenceError(ErrNewsPostNotFound)
	}
	return s.newsRepo.ReplaceAll(ctx, remaining)
}

func (s *newsService) Like(ctx context.Context, id string) (*models.NewsPost, error) {
	posts, err := s.newsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		posts[i].Likes++
		if err := s.newsRepo.ReplaceAll(ctx, posts); err != nil {
			return nil, err
		}
		return &posts[i], nil
	}
	return nil, unknownReferenceError(ErrNewsPostNotFound)
}
