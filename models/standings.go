package models

// TableRow is one team's line in a league points table. In auto mode the
// counters satisfy Played = Won+Drawn+Lost and Points = 3*Won + Drawn;
// manually overridden rows may hold arbitrary non-negative values.
type TableRow struct {
	TeamID         string `json:"teamId"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

// ManualTable is a frozen standings snapshot keyed by tournament. While one
// exists for the active tournament it replaces the auto-computed table.
type ManualTable struct {
	TournamentID string     `json:"tournamentId"`
	Rows         []TableRow `json:"data"`
}

// ScorerEntry is one line of the top-scorer ranking.
type ScorerEntry struct {
	Player Player `json:"player"`
	Team   *Team  `json:"team,omitempty"`
	Goals  int    `json:"goals"`
}
