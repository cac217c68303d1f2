package models

type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Logo      string   `json:"logo,omitempty"`
	CaptainID string   `json:"captainId"`
	ManagerID string   `json:"managerId"`
	PlayerIDs []string `json:"playerIds"`
}

// HasPlayer reports whether the player id is on the team roster.
func (t Team) HasPlayer(playerID string) bool {
	for _, id := range t.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// TeamProfile is the spectator read model: the team with its references
// resolved. Dangling player ids are rendered as unknown entries rather than
// dropped, so the roster length always matches the stored id list.
type TeamProfile struct {
	Team    Team     `json:"team"`
	Roster  []Player `json:"roster"`
	Captain *Player  `json:"captain,omitempty"`
	Manager *Player  `json:"manager,omitempty"`
}
