package services

import (
	"context"
	"time"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/repositories"
	"github.com/amateur-sports/league-system/utils"
)

// StoryTTL is how long a story stays visible after upload.
const StoryTTL = 24 * time.Hour

type CreateStoryInput struct {
	Type      models.StoryType `json:"type"`
	MediaURL  string           `json:"mediaUrl"`
	Thumbnail string           `json:"thumbnail"`
	Duration  *int             `json:"duration"`
	Caption   string           `json:"caption"`
	Uploader  string           `json:"uploader"`
	MatchID   string           `json:"matchId"`
}

type StoryService interface {
	// ListActive returns stories that have not expired, newest first.
	ListActive(ctx context.Context) ([]models.MediaStory, error)
	Create(ctx context.Context, input CreateStoryInput) (*models.MediaStory, error)
	Delete(ctx context.Context, id string) error
}

type storyService struct {
	storyRepo repositories.StoryRepository
	now       func() time.Time
}

func NewStoryService(storyRepo repositories.StoryRepository) StoryService {
	return &storyService{storyRepo: storyRepo, now: time.Now}
}

func (s *storyService) ListActive(ctx context.Context) ([]models.MediaStory, error) {
	stories, err := s.storyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	active := make([]models.MediaStory, 0, len(stories))
	for i := len(stories) - 1; i >= 0; i-- {
		if !stories[i].Expired(now) {
			active = append(active, stories[i])
		}
	}
	return active, nil
}

func (s *storyService) Create(ctx context.Context, input CreateStoryInput) (*models.MediaStory, error) {
	if input.MediaURL == "" {
		return nil, validationError(ErrStoryMediaRequired)
	}
	if input.Type != models.StoryImage && input.Type != models.StoryVideo {
		input.Type = models.StoryImage
	}
	uploader := input.Uploader
	if uploader == "" {
		uploader = "admin"
	}

	stories, err := s.storyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	// Sweep expired stories while we hold the snapshot anyway.
	now := s.now()
	kept := stories[:0]
	for _, st := range stories {
		if !st.Expired(now) {
			kept = append(kept, st)
		}
	}

	story := models.MediaStory{
		ID:        utils.NewID(),
		Type:      input.Type,
		MediaURL:  input.MediaURL,
		Thumbnail: input.Thumbnail,
		Duration:  input.Duration,
		Caption:   input.Caption,
		Uploader:  uploader,
		CreatedAt: now,
		ExpiresAt: now.Add(StoryTTL),
		MatchID:   input.MatchID,
	}
	if err := s.storyRepo.ReplaceAll(ctx, append(kept, story)); err != nil {
		return nil, err
	}
	return &story, nil
}

func (s *storyService) Delete(ctx context.Context, id string) error {
	stories, err := s.storyRepo.List(ctx)
	if err != nil {
		return err
	}
	remaining := stories[:0]
	found := false
	for _, st := range stories {
		if st.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, st)
	}
	if !found {
		return unknownReferenceError(ErrStoryNotFound)
	}
	return s.storyRepo.ReplaceAll(ctx, remaining)
}
