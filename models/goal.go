package models

// Goal is an append-only scoring event tied to a match. Minute is nil when
// the admin did not record one; nothing downstream depends on it beyond
// display.
type Goal struct {
	ID       string `json:"id"`
	MatchID  string `json:"matchId"`
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
	Minute   *int   `json:"minute,omitempty"`
}
