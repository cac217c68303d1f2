package models

import "time"

// MatchStatus matches the values persisted in the matches collection.
type MatchStatus string

const (
	MatchUpcoming  MatchStatus = "Upcoming"
	MatchLive      MatchStatus = "Live"
	MatchCompleted MatchStatus = "Completed"
)

// MatchSide selects which side of a match a goal is credited to.
type MatchSide string

const (
	SideA MatchSide = "A"
	SideB MatchSide = "B"
)

type Match struct {
	ID               string      `json:"id"`
	TournamentID     string      `json:"tournamentId"`
	TeamAID          string      `json:"teamAId"`
	TeamBID          string      `json:"teamBId"`
	ScoreA           int         `json:"scoreA"`
	ScoreB           int         `json:"scoreB"`
	Status           MatchStatus `json:"status"`
	ScheduledAt      time.Time   `json:"scheduledAt"`
	PlayerOfTheMatch string      `json:"playerOfTheMatch,omitempty"`
}
