package services

import (
	"context"
	"testing"
	"time"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_OverrideAndReset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tournament, teams := env.seedLeague(t, "Reds", "Blues")
	env.completeMatch(t, teams[0], teams[1], 2, 0, time.Now())

	auto, err := env.tableSvc.GetTable(ctx)
	require.NoError(t, err)
	assert.False(t, auto.Manual)
	assert.Equal(t, tournament.ID, auto.TournamentID)
	require.Len(t, auto.Rows, 2)
	assert.Equal(t, teams[0].ID, auto.Rows[0].TeamID)
	assert.Equal(t, 3, auto.Rows[0].Points)

	// Hand the win to the losers.
	edited := make([]models.TableRow, len(auto.Rows))
	copy(edited, auto.Rows)
	edited[0].Points, edited[1].Points = 0, 3
	edited[0].Won, edited[1].Won = 0, 1
	edited[0].Lost, edited[1].Lost = 1, 0

	saved, err := env.tableSvc.SaveOverride(ctx, edited)
	require.NoError(t, err)
	assert.True(t, saved.Manual)
	assert.Equal(t, teams[1].ID, saved.Rows[0].TeamID, "re-sorted by the edited points")

	got, err := env.tableSvc.GetTable(ctx)
	require.NoError(t, err)
	assert.True(t, got.Manual)
	assert.Equal(t, saved.Rows, got.Rows)

	// Results recorded while overridden do not show until reset.
	env.completeMatch(t, teams[0], teams[1], 3, 0, time.Now())
	got, err = env.tableSvc.GetTable(ctx)
	require.NoError(t, err)
	assert.True(t, got.Manual)
	assert.Equal(t, saved.Rows, got.Rows)

	require.NoError(t, env.tableSvc.ResetOverride(ctx))
	got, err = env.tableSvc.GetTable(ctx)
	require.NoError(t, err)
	assert.False(t, got.Manual)
	assert.Equal(t, teams[0].ID, got.Rows[0].TeamID)
	assert.Equal(t, 6, got.Rows[0].Points, "both completed matches count again")
}

func TestTable_OverridePinsGoalColumns(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, teams := env.seedLeague(t, "Reds", "Blues")
	env.completeMatch(t, teams[0], teams[1], 2, 1, time.Now())

	auto, err := env.tableSvc.GetTable(ctx)
	require.NoError(t, err)

	edited := make([]models.TableRow, len(auto.Rows))
	copy(edited, auto.Rows)
	for i := range edited {
		edited[i].GoalsFor = 99
		edited[i].GoalsAgainst = 99
		edited[i].GoalDifference = 0
	}

	saved, err := env.tableSvc.SaveOverride(ctx, edited)
	require.NoError(t, err)
	for i, row := range saved.Rows {
		assert.Equal(t, auto.Rows[i].GoalsFor, row.GoalsFor)
		assert.Equal(t, auto.Rows[i].GoalsAgainst, row.GoalsAgainst)
		assert.Equal(t, auto.Rows[i].GoalsFor-auto.Rows[i].GoalsAgainst, row.GoalDifference)
	}
}

func TestTable_OverrideRejectsNegativeCounters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedLeague(t, "Reds", "Blues")

	auto, err := env.tableSvc.GetTable(ctx)
	require.NoError(t, err)
	auto.Rows[0].Points = -1

	_, err = env.tableSvc.SaveOverride(ctx, auto.Rows)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestTable_StaleOverrideIgnoredNotDeleted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	first, teams := env.seedLeague(t, "Reds", "Blues")
	env.completeMatch(t, teams[0], teams[1], 1, 0, time.Now())

	table, err := env.tableSvc.GetTable(ctx)
	require.NoError(t, err)
	_, err = env.tableSvc.SaveOverride(ctx, table.Rows)
	require.NoError(t, err)

	second, err := env.tournamentSvc.Create(ctx, CreateTournamentInput{
		Name: "Other", Type: models.TournamentLeague,
		TeamIDs: []string{teams[0].ID, teams[1].ID},
	})
	require.NoError(t, err)
	require.NoError(t, env.tournamentSvc.SetActive(ctx, second.ID))

	// The first tournament's override does not bleed into the second.
	got, err := env.tableSvc.GetTable(ctx)
	require.NoError(t, err)
	assert.False(t, got.Manual)
	assert.Equal(t, second.ID, got.TournamentID)

	// Reactivate the first: its override is still there and applies again.
	require.NoError(t, env.tournamentSvc.SetActive(ctx, first.ID))
	got, err = env.tableSvc.GetTable(ctx)
	require.NoError(t, err)
	assert.True(t, got.Manual)
	assert.Equal(t, first.ID, got.TournamentID)
}

func TestTable_UnavailableForNonLeague(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	teamA, _ := env.seedTeam(t, "Reds", "Ann")
	teamB, _ := env.seedTeam(t, "Blues", "Bob")

	_, err := env.tournamentSvc.Create(ctx, CreateTournamentInput{
		Name: "Knockout Cup", Type: models.TournamentKnockout,
		TeamIDs: []string{teamA.ID, teamB.ID},
	})
	require.NoError(t, err)

	_, err = env.tableSvc.GetTable(ctx)
	assert.ErrorIs(t, err, standings.ErrTableUnavailable)
}

func TestTable_NoActiveTournament(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.tableSvc.GetTable(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveTournament)
	assert.ErrorIs(t, err, ErrUnknownReference)
}
