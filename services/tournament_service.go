package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/repositories"
	"github.com/amateur-sports/league-system/utils"
)

type CreateTournamentInput struct {
	Name      string                `json:"name"`
	Type      models.TournamentType `json:"type"`
	Logo      string                `json:"logo"`
	Banner    string                `json:"banner"`
	Location  string                `json:"location"`
	StartDate string                `json:"startDate"`
	EndDate   string                `json:"endDate"`
	TeamIDs   []string              `json:"teamIds"`
}

type TournamentService interface {
	List(ctx context.Context) ([]models.Tournament, error)
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	// GetActive returns the active tournament, or nil when none is active.
	GetActive(ctx context.Context) (*models.Tournament, error)
	Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	Update(ctx context.Context, id string, input CreateTournamentInput) (*models.Tournament, error)
	// SetActive flips the active flag to the given tournament and clears it
	// on every other one, in a single tournaments write.
	SetActive(ctx context.Context, id string) error
	// Delete cascades: the tournament's matches go first, then the
	// tournament itself, then any manual table override keyed to it. Teams
	// and players are never touched.
	Delete(ctx context.Context, id string) error
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	matchRepo      repositories.MatchRepository
	overrideRepo   repositories.OverrideRepository
	logger         *slog.Logger
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	overrideRepo repositories.OverrideRepository,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		overrideRepo:   overrideRepo,
		logger:         logger,
	}
}

func (s *tournamentService) List(ctx context.Context) ([]models.Tournament, error) {
	return s.tournamentRepo.List(ctx)
}

func (s *tournamentService) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tournaments {
		if tournaments[i].ID == id {
			return &tournaments[i], nil
		}
	}
	return nil, unknownReferenceError(ErrTournamentNotFound)
}

func (s *tournamentService) GetActive(ctx context.Context) (*models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tournaments {
		if tournaments[i].IsActive {
			return &tournaments[i], nil
		}
	}
	return nil, nil
}

func (s *tournamentService) validate(ctx context.Context, input CreateTournamentInput) error {
	if input.Name == "" {
		return validationError(ErrTournamentNameRequired)
	}
	if !input.Type.Valid() {
		return validationError(ErrTournamentTypeInvalid)
	}
	if len(input.TeamIDs) < 2 {
		return validationError(ErrTournamentNeedsTeams)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(teams))
	for _, team := range teams {
		known[team.ID] = true
	}
	for _, teamID := range input.TeamIDs {
		if !known[teamID] {
			return unknownReferenceError(fmt.Errorf("%w: %s", ErrTeamNotFound, teamID))
		}
	}
	return nil
}

func (s *tournamentService) Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	tournament := models.Tournament{
		ID:        utils.NewID(),
		Name:      input.Name,
		Type:      input.Type,
		Logo:      input.Logo,
		Banner:    input.Banner,
		Location:  input.Location,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		TeamIDs:   input.TeamIDs,
		// The very first tournament becomes active automatically.
		IsActive: len(tournaments) == 0,
	}

	if err := s.tournamentRepo.ReplaceAll(ctx, append(tournaments, tournament)); err != nil {
		return nil, err
	}
	s.logger.Info("tournament created",
		slog.String("id", tournament.ID),
		slog.String("name", tournament.Name),
		slog.String("type", string(tournament.Type)))
	return &tournament, nil
}

func (s *tournamentService) Update(ctx context.Context, id string, input CreateTournamentInput) (*models.Tournament, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tournaments {
		if tournaments[i].ID != id {
			continue
		}
		tournaments[i].Name = input.Name
		tournaments[i].Type = input.Type
		tournaments[i].Logo = input.Logo
		tournaments[i].Banner = input.Banner
		tournaments[i].Location = input.Location
		tournaments[i].StartDate = input.StartDate
		tournaments[i].EndDate = input.EndDate
		tournaments[i].TeamIDs = input.TeamIDs
		if err := s.tournamentRepo.ReplaceAll(ctx, tournaments); err != nil {
			return nil, err
		}
		return &tournaments[i], nil
	}
	return nil, unknownReferenceError(ErrTournamentNotFound)
}

func (s *tournamentService) SetActive(ctx context.Context, id string) error {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range tournaments {
		tournaments[i].IsActive = tournaments[i].ID == id
		if tournaments[i].IsActive {
			found = true
		}
	}
	if !found {
		return unknownReferenceError(ErrTournamentNotFound)
	}

	// One write performs both the deactivation of the previous tournament
	// and the activation of the new one, so readers never observe two
	// active tournaments.
	if err := s.tournamentRepo.ReplaceAll(ctx, tournaments); err != nil {
		return err
	}
	s.logger.Info("tournament activated", slog.String("id", id))
	return nil
}

func (s *tournamentService) Delete(ctx context.Context, id string) error {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return err
	}
	remaining := tournaments[:0]
	found := false
	for _, t := range tournaments {
		if t.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, t)
	}
	if !found {
		return unknownReferenceError(ErrTournamentNotFound)
	}

	// Matches go first: if the second write never happens, a tournament
	// without matches is the least harmful partial state.
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return err
	}
	kept := matches[:0]
	removed := 0
	for _, m := range matches {
		if m.TournamentID == id {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	if err := s.matchRepo.ReplaceAll(ctx, kept); err != nil {
		return err
	}

	if err := s.tournamentRepo.ReplaceAll(ctx, remaining); err != nil {
		return err
	}

	override, err := s.overrideRepo.Get(ctx)
	if err != nil {
		return err
	}
	if override != nil && override.TournamentID == id {
		if err := s.overrideRepo.Delete(ctx); err != nil {
			return err
		}
	}

	s.logger.Info("tournament deleted",
		slog.String("id", id),
		slog.Int("matches_removed", removed))
	return nil
}
