package models

import "time"

type NewsPost struct {
	ID        string    `json:"id"`
	Image     string    `json:"image,omitempty"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
}
