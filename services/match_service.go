package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amateur-sports/league-system/fixtures"
	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/repositories"
	"github.com/amateur-sports/league-system/utils"
)

type CreateMatchInput struct {
	TeamAID     string    `json:"teamAId"`
	TeamBID     string    `json:"teamBId"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

type GoalInput struct {
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
	// Minute is optional; when absent the goal is recorded with an unknown
	// minute. When present it must fall in regulation time.
	Minute *int `json:"minute,omitempty"`
}

type MatchService interface {
	List(ctx context.Context) ([]models.Match, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]models.Match, error)
	ListGoals(ctx context.Context, matchID string) ([]models.Goal, error)

	// Create schedules an Upcoming match under the active tournament.
	Create(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	// Edit replaces teams or kickoff of an Upcoming match.
	Edit(ctx context.Context, id string, input CreateMatchInput) (*models.Match, error)
	Delete(ctx context.Context, id string) error
	// GenerateFixtures appends a full round-robin for the active tournament
	// and returns the number of matches created.
	GenerateFixtures(ctx context.Context) (int, error)

	// Live control. Each call validates the transition and commits the
	// resulting snapshot before returning.
	Start(ctx context.Context, id string) (*models.Match, error)
	RecordGoal(ctx context.Context, id string, input GoalInput) (*models.Match, error)
	SetPlayerOfTheMatch(ctx context.Context, id, playerID string) (*models.Match, error)
	End(ctx context.Context, id string) (*models.Match, error)
}

type matchService struct {
	matchRepo      repositories.MatchRepository
	goalRepo       repositories.GoalRepository
	teamRepo       repositories.TeamRepository
	playerRepo     repositories.PlayerRepository
	tournamentRepo repositories.TournamentRepository
	generator      fixtures.Generator
	logger         *slog.Logger
	now            func() time.Time
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	goalRepo repositories.GoalRepository,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	generator fixtures.Generator,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo:      matchRepo,
		goalRepo:       goalRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
		generator:      generator,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *matchService) List(ctx context.Context) ([]models.Match, error) {
	return s.matchRepo.List(ctx)
}

func (s *matchService) ListByTournament(ctx context.Context, tournamentID string) ([]models.Match, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.TournamentID == tournamentID {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func (s *matchService) ListGoals(ctx context.Context, matchID string) ([]models.Goal, error) {
	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Goal, 0)
	for _, g := range goals {
		if g.MatchID == matchID {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

func (s *matchService) activeTournament(ctx context.Context) (*models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tournaments {
		if tournaments[i].IsActive {
			return &tournaments[i], nil
		}
	}
	return nil, unknownReferenceError(ErrNoActiveTournament)
}

func (s *matchService) Create(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	tournament, err := s.activeTournament(ctx)
	if err != nil {
		return nil, err
	}
	if input.TeamAID == input.TeamBID {
		return nil, transitionError(ErrTeamsMustDiffer)
	}
	for _, teamID := range []string{input.TeamAID, input.TeamBID} {
		if !tournament.HasTeam(teamID) {
			return nil, unknownReferenceError(fmt.Errorf("%w: %s", ErrTeamNotInTournament, teamID))
		}
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	match := models.Match{
		ID:           utils.NewID(),
		TournamentID: tournament.ID,
		TeamAID:      input.TeamAID,
		TeamBID:      input.TeamBID,
		Status:       models.MatchUpcoming,
		ScheduledAt:  input.ScheduledAt,
	}
	if err := s.matchRepo.ReplaceAll(ctx, append(matches, match)); err != nil {
		return nil, err
	}
	return &match, nil
}

// mutate loads the match list, applies fn to the match with the given id and
// commits the snapshot when fn succeeds.
func (s *matchService) mutate(ctx context.Context, id string, fn func(*models.Match) error) (*models.Match, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		if matches[i].ID != id {
			continue
		}
		if err := fn(&matches[i]); err != nil {
			return nil, err
		}
		if err := s.matchRepo.ReplaceAll(ctx, matches); err != nil {
			return nil, err
		}
		return &matches[i], nil
	}
	return nil, unknownReferenceError(ErrMatchNotFound)
}

func (s *matchService) Edit(ctx context.Context, id string, input CreateMatchInput) (*models.Match, error) {
	return s.mutate(ctx, id, func(m *models.Match) error {
		if err := editMatch(m, input.TeamAID, input.TeamBID); err != nil {
			return err
		}
		m.TeamAID = input.TeamAID
		m.TeamBID = input.TeamBID
		m.ScheduledAt = input.ScheduledAt
		return nil
	})
}

func (s *matchService) Delete(ctx context.Context, id string) error {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return err
	}
	remaining := matches[:0]
	found := false
	for _, m := range matches {
		if m.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, m)
	}
	if !found {
		return unknownReferenceError(ErrMatchNotFound)
	}
	// Goal events of the deleted match are left behind on purpose; every
	// aggregation path filters them out.
	return s.matchRepo.ReplaceAll(ctx, remaining)
}

func (s *matchService) GenerateFixtures(ctx context.Context) (int, error) {
	tournament, err := s.activeTournament(ctx)
	if err != nil {
		return 0, err
	}

	start := s.now()
	// Evening kickoffs, matching the manual scheduling default.
	start = time.Date(start.Year(), start.Month(), start.Day(), 19, 0, 0, 0, start.Location())

	generated, err := s.generator.Generate(ctx, fixtures.GenerateParams{
		Tournament: *tournament,
		Start:      start,
		Spacing:    fixtures.DefaultSpacing,
		NewID:      utils.NewID,
	})
	if err != nil {
		return 0, validationError(err)
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.matchRepo.ReplaceAll(ctx, append(matches, generated...)); err != nil {
		return 0, err
	}

	s.logger.Info("fixtures generated",
		slog.String("tournament_id", tournament.ID),
		slog.Int("matches", len(generated)))
	return len(generated), nil
}

func (s *matchService) Start(ctx context.Context, id string) (*models.Match, error) {
	return s.mutate(ctx, id, startMatch)
}

func (s *matchService) RecordGoal(ctx context.Context, id string, input GoalInput) (*models.Match, error) {
	if input.Minute != nil && (*input.Minute < 0 || *input.Minute > 89) {
		return nil, validationError(ErrGoalMinuteInvalid)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	scorerKnown := false
	for _, p := range players {
		if p.ID == input.PlayerID {
			scorerKnown = true
			break
		}
	}
	if !scorerKnown {
		return nil, unknownReferenceError(fmt.Errorf("%w: %s", ErrPlayerNotFound, input.PlayerID))
	}

	match, err := s.mutate(ctx, id, func(m *models.Match) error {
		return scoreGoal(m, input.TeamID)
	})
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	goal := models.Goal{
		ID:       utils.NewID(),
		MatchID:  match.ID,
		TeamID:   input.TeamID,
		PlayerID: input.PlayerID,
		Minute:   input.Minute,
	}
	if err := s.goalRepo.ReplaceAll(ctx, append(goals, goal)); err != nil {
		return nil, err
	}
	return match, nil
}

func (s *matchService) SetPlayerOfTheMatch(ctx context.Context, id, playerID string) (*models.Match, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var match *models.Match
	for i := range matches {
		if matches[i].ID == id {
			match = &matches[i]
			break
		}
	}
	if match == nil {
		return nil, unknownReferenceError(ErrMatchNotFound)
	}

	onRoster, err := s.playerOnEitherRoster(ctx, *match, playerID)
	if err != nil {
		return nil, err
	}
	if !onRoster {
		return nil, transitionError(ErrPlayerNotInMatch)
	}

	if err := setPlayerOfTheMatch(match, playerID); err != nil {
		return nil, err
	}
	if err := s.matchRepo.ReplaceAll(ctx, matches); err != nil {
		return nil, err
	}
	return match, nil
}

func (s *matchService) playerOnEitherRoster(ctx context.Context, match models.Match, playerID string) (bool, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, team := range teams {
		if team.ID != match.TeamAID && team.ID != match.TeamBID {
			continue
		}
		if team.HasPlayer(playerID) {
			return true, nil
		}
	}
	return false, nil
}

func (s *matchService) End(ctx context.Context, id string) (*models.Match, error) {
	match, err := s.mutate(ctx, id, endMatch)
	if err != nil {
		return nil, err
	}
	s.logger.Info("match completed",
		slog.String("id", match.ID),
		slog.Int("score_a", match.ScoreA),
		slog.Int("score_b", match.ScoreB))
	return match, nil
}
