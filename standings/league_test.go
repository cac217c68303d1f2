package standings

import (
	"testing"

	"github.com/amateur-sports/league-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completed(tournamentID, a, b string, scoreA, scoreB int) models.Match {
	return models.Match{
		TournamentID: tournamentID,
		TeamAID:      a,
		TeamBID:      b,
		ScoreA:       scoreA,
		ScoreB:       scoreB,
		Status:       models.MatchCompleted,
	}
}

// Full three-team round robin: A 2-1 B, B 1-1 C, C 0-3 A.
func threeTeamFixtures() (models.Tournament, []models.Match) {
	tournament := models.Tournament{
		ID:      "cup",
		Type:    models.TournamentLeague,
		TeamIDs: []string{"A", "B", "C"},
	}
	matches := []models.Match{
		completed("cup", "A", "B", 2, 1),
		completed("cup", "B", "C", 1, 1),
		completed("cup", "C", "A", 0, 3),
	}
	return tournament, matches
}

func TestLeagueTable_ThreeTeamRoundRobin(t *testing.T) {
	tournament, matches := threeTeamFixtures()

	rows, err := LeagueProducer{}.Table(tournament, matches)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, models.TableRow{
		TeamID: "A", Played: 2, Won: 2, GoalsFor: 5, GoalsAgainst: 1, GoalDifference: 4, Points: 6,
	}, rows[0])
	// B edges C on goal difference (-1 vs -3) despite equal points.
	assert.Equal(t, models.TableRow{
		TeamID: "B", Played: 2, Drawn: 1, Lost: 1, GoalsFor: 2, GoalsAgainst: 3, GoalDifference: -1, Points: 1,
	}, rows[1])
	assert.Equal(t, models.TableRow{
		TeamID: "C", Played: 2, Drawn: 1, Lost: 1, GoalsFor: 1, GoalsAgainst: 4, GoalDifference: -3, Points: 1,
	}, rows[2])
}

func TestLeagueTable_Arithmetic(t *testing.T) {
	tournament, matches := threeTeamFixtures()

	rows, err := LeagueProducer{}.Table(tournament, matches)
	require.NoError(t, err)

	for _, row := range rows {
		assert.Equal(t, row.Played, row.Won+row.Drawn+row.Lost, "team %s", row.TeamID)
		assert.Equal(t, 3*row.Won+row.Drawn, row.Points, "team %s", row.TeamID)
		assert.Equal(t, row.GoalsFor-row.GoalsAgainst, row.GoalDifference, "team %s", row.TeamID)
	}
}

func TestLeagueTable_OneRowPerTeamRegardlessOfMatches(t *testing.T) {
	tournament := models.Tournament{
		ID:      "cup",
		Type:    models.TournamentLeague,
		TeamIDs: []string{"A", "B", "C", "D"},
	}

	rows, err := LeagueProducer{}.Table(tournament, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	for _, row := range rows {
		assert.Zero(t, row.Played)
		assert.Zero(t, row.Points)
	}
}

func TestLeagueTable_SkipsForeignAndUnfinishedMatches(t *testing.T) {
	tournament := models.Tournament{ID: "cup", TeamIDs: []string{"A", "B"}}
	matches := []models.Match{
		completed("other", "A", "B", 1, 0),
		{TournamentID: "cup", TeamAID: "A", TeamBID: "B", ScoreA: 3, ScoreB: 0, Status: models.MatchLive},
		{TournamentID: "cup", TeamAID: "A", TeamBID: "B", Status: models.MatchUpcoming},
	}

	rows, err := LeagueProducer{}.Table(tournament, matches)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Zero(t, row.Played)
	}
}

func TestLeagueTable_SkipsMatchesWithRemovedTeams(t *testing.T) {
	tournament := models.Tournament{ID: "cup", TeamIDs: []string{"A", "B"}}
	matches := []models.Match{
		completed("cup", "A", "ghost", 4, 0),
		completed("cup", "A", "B", 1, 0),
	}

	rows, err := LeagueProducer{}.Table(tournament, matches)
	require.NoError(t, err)
	assert.Equal(t, "A", rows[0].TeamID)
	assert.Equal(t, 1, rows[0].Played)
	assert.Equal(t, 1, rows[0].GoalsFor)
}

func TestLeagueTable_SortStableUnderMatchOrder(t *testing.T) {
	tournament := models.Tournament{ID: "cup", TeamIDs: []string{"A", "B", "C", "D"}}
	// B and C end up identical on points, GD and GF.
	matches := []models.Match{
		completed("cup", "A", "B", 2, 0),
		completed("cup", "A", "C", 2, 0),
		completed("cup", "B", "D", 1, 0),
		completed("cup", "C", "D", 1, 0),
	}

	rows, err := LeagueProducer{}.Table(tournament, matches)
	require.NoError(t, err)

	reversed := make([]models.Match, len(matches))
	for i, m := range matches {
		reversed[len(matches)-1-i] = m
	}
	again, err := LeagueProducer{}.Table(tournament, reversed)
	require.NoError(t, err)

	assert.Equal(t, rows, again)
	// Full tie broken by stored team order: B before C.
	assert.Equal(t, "B", rows[1].TeamID)
	assert.Equal(t, "C", rows[2].TeamID)
}

func TestForType_NonLeagueUnavailable(t *testing.T) {
	for _, typ := range []models.TournamentType{models.TournamentKnockout, models.TournamentWeekly} {
		_, err := ForType(typ).Table(models.Tournament{Type: typ}, nil)
		assert.ErrorIs(t, err, ErrTableUnavailable, "%s", typ)
	}

	_, err := ForType(models.TournamentLeague).Table(models.Tournament{TeamIDs: []string{"A"}}, nil)
	assert.NoError(t, err)
}
