package models

type DashboardStats struct {
	PlayersTotal     int `json:"players_total"`
	TeamsTotal       int `json:"teams_total"`
	TournamentsTotal int `json:"tournaments_total"`
	MatchesTotal     int `json:"matches_total"`
	MatchesUpcoming  int `json:"matches_upcoming"`
	MatchesLive      int `json:"matches_live"`
	MatchesCompleted int `json:"matches_completed"`
	GoalsTotal       int `json:"goals_total"`
	NewsTotal        int `json:"news_total"`
}
