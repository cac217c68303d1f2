package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amateur-sports/league-system/fixtures"
	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/repositories"
	"github.com/amateur-sports/league-system/store"
	"github.com/stretchr/testify/require"
)

// testEnv wires every service against a fresh in-memory store.
type testEnv struct {
	players     repositories.PlayerRepository
	teams       repositories.TeamRepository
	tournaments repositories.TournamentRepository
	matches     repositories.MatchRepository
	goals       repositories.GoalRepository
	news        repositories.NewsRepository
	stories     repositories.StoryRepository
	overrides   repositories.OverrideRepository

	tournamentSvc TournamentService
	teamSvc       TeamService
	playerSvc     PlayerService
	matchSvc      MatchService
	tableSvc      TableService
	scorerSvc     ScorerService
	importSvc     ImportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s := store.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	env := &testEnv{
		players:     repositories.NewPlayerRepository(s),
		teams:       repositories.NewTeamRepository(s),
		tournaments: repositories.NewTournamentRepository(s),
		matches:     repositories.NewMatchRepository(s),
		goals:       repositories.NewGoalRepository(s),
		news:        repositories.NewNewsRepository(s),
		stories:     repositories.NewStoryRepository(s),
		overrides:   repositories.NewOverrideRepository(s),
	}
	env.tournamentSvc = NewTournamentService(env.tournaments, env.teams, env.matches, env.overrides, logger)
	env.teamSvc = NewTeamService(env.teams, env.players)
	env.playerSvc = NewPlayerService(env.players)
	env.matchSvc = NewMatchService(env.matches, env.goals, env.teams, env.players, env.tournaments, fixtures.NewRoundRobinGenerator(), logger)
	env.tableSvc = NewTableService(env.tournaments, env.matches, env.overrides)
	env.scorerSvc = NewScorerService(env.goals, env.players, env.teams)
	env.importSvc = NewImportService(env.tournaments, env.teams, env.players, env.matches, logger)
	return env
}

// seedTeam creates n players and a team rostering them, returning the team
// and player ids in roster order.
func (e *testEnv) seedTeam(t *testing.T, name string, playerNames ...string) (models.Team, []string) {
	t.Helper()
	ctx := context.Background()

	var ids []string
	for i, pn := range playerNames {
		p, err := e.playerSvc.Create(ctx, CreatePlayerInput{
			Name:         pn,
			Position:     models.PositionForward,
			JerseyNumber: i + 1,
		})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}
	team, err := e.teamSvc.Create(ctx, CreateTeamInput{Name: name, PlayerIDs: ids})
	require.NoError(t, err)
	return *team, ids
}

// seedLeague creates teams (one player each) and an active league tournament
// over them.
func (e *testEnv) seedLeague(t *testing.T, teamNames ...string) (models.Tournament, []models.Team) {
	t.Helper()
	ctx := context.Background()

	var teams []models.Team
	var teamIDs []string
	for _, name := range teamNames {
		team, _ := e.seedTeam(t, name, name+" player")
		teams = append(teams, team)
		teamIDs = append(teamIDs, team.ID)
	}
	tournament, err := e.tournamentSvc.Create(ctx, CreateTournamentInput{
		Name:      "Summer League",
		Type:      models.TournamentLeague,
		StartDate: "2026-08-01",
		EndDate:   "2026-10-01",
		TeamIDs:   teamIDs,
	})
	require.NoError(t, err)
	require.True(t, tournament.IsActive, "first tournament should activate itself")
	return *tournament, teams
}

// completeMatch drives a match through the live flow to the given score.
// Goals are credited to the first rostered player of the scoring team.
func (e *testEnv) completeMatch(t *testing.T, teamA, teamB models.Team, scoreA, scoreB int, at time.Time) models.Match {
	t.Helper()
	ctx := context.Background()

	match, err := e.matchSvc.Create(ctx, CreateMatchInput{TeamAID: teamA.ID, TeamBID: teamB.ID, ScheduledAt: at})
	require.NoError(t, err)
	_, err = e.matchSvc.Start(ctx, match.ID)
	require.NoError(t, err)

	for i := 0; i < scoreA; i++ {
		_, err = e.matchSvc.RecordGoal(ctx, match.ID, GoalInput{TeamID: teamA.ID, PlayerID: teamA.PlayerIDs[0]})
		require.NoError(t, err)
	}
	for i := 0; i < scoreB; i++ {
		_, err = e.matchSvc.RecordGoal(ctx, match.ID, GoalInput{TeamID: teamB.ID, PlayerID: teamB.PlayerIDs[0]})
		require.NoError(t, err)
	}

	done, err := e.matchSvc.End(ctx, match.ID)
	require.NoError(t, err)
	return *done
}
