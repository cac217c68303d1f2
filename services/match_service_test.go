package services

import (
	"context"
	"testing"
	"time"

	"github.com/amateur-sports/league-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_LiveGoalFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, teams := env.seedLeague(t, "Reds", "Blues")
	teamA, teamB := teams[0], teams[1]

	match, err := env.matchSvc.Create(ctx, CreateMatchInput{
		TeamAID: teamA.ID, TeamBID: teamB.ID, ScheduledAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.MatchUpcoming, match.Status)

	match, err = env.matchSvc.Start(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchLive, match.Status)

	p2, err := env.playerSvc.Create(ctx, CreatePlayerInput{Name: "Sub", Position: models.PositionMidfielder, JerseyNumber: 14})
	require.NoError(t, err)

	match, err = env.matchSvc.RecordGoal(ctx, match.ID, GoalInput{TeamID: teamA.ID, PlayerID: teamA.PlayerIDs[0]})
	require.NoError(t, err)
	match, err = env.matchSvc.RecordGoal(ctx, match.ID, GoalInput{TeamID: teamA.ID, PlayerID: p2.ID})
	require.NoError(t, err)
	match, err = env.matchSvc.RecordGoal(ctx, match.ID, GoalInput{TeamID: teamB.ID, PlayerID: teamB.PlayerIDs[0]})
	require.NoError(t, err)

	assert.Equal(t, 2, match.ScoreA)
	assert.Equal(t, 1, match.ScoreB)

	goals, err := env.matchSvc.ListGoals(ctx, match.ID)
	require.NoError(t, err)
	require.Len(t, goals, 3)
	assert.Equal(t, teamA.ID, goals[0].TeamID)
	assert.Equal(t, teamA.PlayerIDs[0], goals[0].PlayerID)
	assert.Equal(t, teamB.ID, goals[2].TeamID)

	match, err = env.matchSvc.End(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchCompleted, match.Status)
	assert.Equal(t, 2, match.ScoreA)
	assert.Equal(t, 1, match.ScoreB)
}

func TestMatch_GoalIncrementsExactlyOneSide(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, teams := env.seedLeague(t, "Reds", "Blues")

	match, err := env.matchSvc.Create(ctx, CreateMatchInput{
		TeamAID: teams[0].ID, TeamBID: teams[1].ID, ScheduledAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = env.matchSvc.Start(ctx, match.ID)
	require.NoError(t, err)

	before, err := env.matchSvc.ListGoals(ctx, match.ID)
	require.NoError(t, err)

	updated, err := env.matchSvc.RecordGoal(ctx, match.ID, GoalInput{TeamID: teams[1].ID, PlayerID: teams[1].PlayerIDs[0]})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.ScoreA)
	assert.Equal(t, 1, updated.ScoreB)

	after, err := env.matchSvc.ListGoals(ctx, match.ID)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
}

func TestMatch_InvalidTransitions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, teams := env.seedLeague(t, "Reds", "Blues")

	match, err := env.matchSvc.Create(ctx, CreateMatchInput{
		TeamAID: teams[0].ID, TeamBID: teams[1].ID, ScheduledAt: time.Now(),
	})
	require.NoError(t, err)

	// Scoring before kickoff.
	_, err = env.matchSvc.RecordGoal(ctx, match.ID, GoalInput{TeamID: teams[0].ID, PlayerID: teams[0].PlayerIDs[0]})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Ending before kickoff.
	_, err = env.matchSvc.End(ctx, match.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = env.matchSvc.Start(ctx, match.ID)
	require.NoError(t, err)

	// Double start.
	_, err = env.matchSvc.Start(ctx, match.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Editing a live match.
	_, err = env.matchSvc.Edit(ctx, match.ID, CreateMatchInput{
		TeamAID: teams[0].ID, TeamBID: teams[1].ID, ScheduledAt: time.Now(),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = env.matchSvc.End(ctx, match.ID)
	require.NoError(t, err)

	// Completed admits no further goals.
	_, err = env.matchSvc.RecordGoal(ctx, match.ID, GoalInput{TeamID: teams[0].ID, PlayerID: teams[0].PlayerIDs[0]})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMatch_StartRejectsSelfPlay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, teams := env.seedLeague(t, "Reds", "Blues")

	match, err := env.matchSvc.Create(ctx, CreateMatchInput{
		TeamAID: teams[0].ID, TeamBID: teams[1].ID, ScheduledAt: time.Now(),
	})
	require.NoError(t, err)

	// Corrupt the stored record so both sides are the same team, the way a
	// raw store edit could.
	matches, err := env.matches.List(ctx)
	require.NoError(t, err)
	matches[0].TeamBID = matches[0].TeamAID
	require.NoError(t, env.matches.ReplaceAll(ctx, matches))

	_, err = env.matchSvc.Start(ctx, match.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, err, ErrTeamsMustDiffer)
}

func TestMatch_CreateGuards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.matchSvc.Create(ctx, CreateMatchInput{TeamAID: "a", TeamBID: "b"})
	assert.ErrorIs(t, err, ErrNoActiveTournament)

	_, teams := env.seedLeague(t, "Reds", "Blues")
	outsider, _ := env.seedTeam(t, "Greens", "Gus")

	_, err = env.matchSvc.Create(ctx, CreateMatchInput{TeamAID: teams[0].ID, TeamBID: teams[0].ID})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = env.matchSvc.Create(ctx, CreateMatchInput{TeamAID: teams[0].ID, TeamBID: outsider.ID})
	assert.ErrorIs(t, err, ErrUnknownReference)
}

func TestMatch_GoalValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, teams := env.seedLeague(t, "Reds", "Blues")

	match, err := env.matchSvc.Create(ctx, CreateMatchInput{
		TeamAID: teams[0].ID, TeamBID: teams[1].ID, ScheduledAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = env.matchSvc.Start(ctx, match.ID)
	require.NoError(t, err)

	// Unknown scorer.
	_, err = env.matchSvc.RecordGoal(ctx, match.ID, GoalInput{TeamID: teams[0].ID, PlayerID: "ghost"})
	assert.ErrorIs(t, err, ErrUnknownReference)

	// Team not playing in this match.
	outsider, outsiderPlayers := env.seedTeam(t, "Greens", "Gus")
	_, err = env.matchSvc.RecordGoal(ctx, match.ID, GoalInput{TeamID: outsider.ID, PlayerID: outsiderPlayers[0]})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Out-of-range minute.
	minute := 95
	_, err = env.matchSvc.RecordGoal(ctx, match.ID, GoalInput{TeamID: teams[0].ID, PlayerID: teams[0].PlayerIDs[0], Minute: &minute})
	assert.ErrorIs(t, err, ErrValidationFailed)

	// Valid minute is stored with the goal.
	minute = 42
	_, err = env.matchSvc.RecordGoal(ctx, match.ID, GoalInput{TeamID: teams[0].ID, PlayerID: teams[0].PlayerIDs[0], Minute: &minute})
	require.NoError(t, err)
	goals, err := env.matchSvc.ListGoals(ctx, match.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	require.NotNil(t, goals[0].Minute)
	assert.Equal(t, 42, *goals[0].Minute)
}

func TestMatch_PlayerOfTheMatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, teams := env.seedLeague(t, "Reds", "Blues")

	match, err := env.matchSvc.Create(ctx, CreateMatchInput{
		TeamAID: teams[0].ID, TeamBID: teams[1].ID, ScheduledAt: time.Now(),
	})
	require.NoError(t, err)

	// Not before kickoff.
	_, err = env.matchSvc.SetPlayerOfTheMatch(ctx, match.ID, teams[0].PlayerIDs[0])
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = env.matchSvc.Start(ctx, match.ID)
	require.NoError(t, err)

	// Must be on one of the two rosters.
	_, outsiderPlayers := env.seedTeam(t, "Greens", "Gus")
	_, err = env.matchSvc.SetPlayerOfTheMatch(ctx, match.ID, outsiderPlayers[0])
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, err, ErrPlayerNotInMatch)

	updated, err := env.matchSvc.SetPlayerOfTheMatch(ctx, match.ID, teams[0].PlayerIDs[0])
	require.NoError(t, err)
	assert.Equal(t, teams[0].PlayerIDs[0], updated.PlayerOfTheMatch)

	// Still settable after full time, last write wins.
	_, err = env.matchSvc.End(ctx, match.ID)
	require.NoError(t, err)
	updated, err = env.matchSvc.SetPlayerOfTheMatch(ctx, match.ID, teams[1].PlayerIDs[0])
	require.NoError(t, err)
	assert.Equal(t, teams[1].PlayerIDs[0], updated.PlayerOfTheMatch)
}

func TestMatch_GenerateFixturesAppends(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, teams := env.seedLeague(t, "Reds", "Blues", "Greens")

	// One manually scheduled match already exists.
	_, err := env.matchSvc.Create(ctx, CreateMatchInput{
		TeamAID: teams[0].ID, TeamBID: teams[1].ID, ScheduledAt: time.Now(),
	})
	require.NoError(t, err)

	created, err := env.matchSvc.GenerateFixtures(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	matches, err := env.matchSvc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, matches, 4)
	for _, m := range matches {
		assert.Equal(t, models.MatchUpcoming, m.Status)
	}
}

func TestMatch_DeleteLeavesGoalsForAggregationToFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, teams := env.seedLeague(t, "Reds", "Blues")
	match := env.completeMatch(t, teams[0], teams[1], 1, 0, time.Now())

	require.NoError(t, env.matchSvc.Delete(ctx, match.ID))

	matches, err := env.matchSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)

	// The orphaned goal record is still in the store.
	goals, err := env.goals.List(ctx)
	require.NoError(t, err)
	assert.Len(t, goals, 1)
}
