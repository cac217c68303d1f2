package models

import "time"

type StoryType string

const (
	StoryImage StoryType = "image"
	StoryVideo StoryType = "video"
)

// MediaStory is a short-lived media post. Stories expire 24 hours after
// creation; expired stories are filtered out on read and swept on write.
type MediaStory struct {
	ID        string    `json:"id"`
	Type      StoryType `json:"type"`
	MediaURL  string    `json:"mediaUrl"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	Duration  *int      `json:"duration,omitempty"`
	Caption   string    `json:"caption,omitempty"`
	Uploader  string    `json:"uploader"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	MatchID   string    `json:"matchId,omitempty"`
}

func (s MediaStory) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
