package models

// TournamentType matches the values persisted in the tournaments collection.
type TournamentType string

const (
	TournamentLeague   TournamentType = "League"
	TournamentKnockout TournamentType = "Knockout"
	TournamentWeekly   TournamentType = "Weekly Match"
)

func (t TournamentType) Valid() bool {
	switch t {
	case TournamentLeague, TournamentKnockout, TournamentWeekly:
		return true
	}
	return false
}

type Tournament struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      TournamentType `json:"type"`
	Logo      string         `json:"logo,omitempty"`
	Banner    string         `json:"banner,omitempty"`
	Location  string         `json:"location,omitempty"`
	StartDate string         `json:"startDate,omitempty"`
	EndDate   string         `json:"endDate,omitempty"`
	TeamIDs   []string       `json:"teamIds"`
	IsActive  bool           `json:"isActive"`
}

// HasTeam reports whether the team id participates in the tournament.
func (t Tournament) HasTeam(teamID string) bool {
	for _, id := range t.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}
