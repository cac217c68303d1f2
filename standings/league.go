package standings

import "github.com/amateur-sports/league-system/models"

// LeagueProducer computes the classic 3-1-0 points table from completed
// matches.
type LeagueProducer struct{}

// Table builds one row per team in the tournament's stored team set,
// regardless of match data. Only Completed matches of this tournament count,
// and only when both sides are still in the team set; matches referencing
// teams that have since been removed are skipped rather than rejected.
func (LeagueProducer) Table(tournament models.Tournament, matches []models.Match) ([]models.TableRow, error) {
	index := make(map[string]int, len(tournament.TeamIDs))
	rows := make([]models.TableRow, 0, len(tournament.TeamIDs))
	for _, teamID := range tournament.TeamIDs {
		index[teamID] = len(rows)
		rows = append(rows, models.TableRow{TeamID: teamID})
	}

	for _, m := range matches {
		if m.TournamentID != tournament.ID || m.Status != models.MatchCompleted {
			continue
		}
		ai, okA := index[m.TeamAID]
		bi, okB := index[m.TeamBID]
		if !okA || !okB {
			continue
		}
		rowA, rowB := &rows[ai], &rows[bi]

		rowA.Played++
		rowB.Played++
		rowA.GoalsFor += m.ScoreA
		rowA.GoalsAgainst += m.ScoreB
		rowB.GoalsFor += m.ScoreB
		rowB.GoalsAgainst += m.ScoreA

		switch {
		case m.ScoreA > m.ScoreB:
			rowA.Won++
			rowA.Points += 3
			rowB.Lost++
		case m.ScoreA < m.ScoreB:
			rowB.Won++
			rowB.Points += 3
			rowA.Lost++
		default:
			rowA.Drawn++
			rowA.Points++
			rowB.Drawn++
			rowB.Points++
		}
	}

	for i := range rows {
		rows[i].GoalDifference = rows[i].GoalsFor - rows[i].GoalsAgainst
	}

	SortRows(rows)
	return rows, nil
}
