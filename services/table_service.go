package services

import (
	"context"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/repositories"
	"github.com/amateur-sports/league-system/standings"
)

// TableResult carries the standings together with the mode they came from,
// so clients can show "manual mode" next to an overridden table.
type TableResult struct {
	TournamentID string            `json:"tournamentId"`
	Manual       bool              `json:"manual"`
	Rows         []models.TableRow `json:"rows"`
}

type TableService interface {
	// GetTable returns the override for the active tournament when one
	// exists, otherwise the auto-computed table. Non-league tournaments
	// yield standings.ErrTableUnavailable.
	GetTable(ctx context.Context) (*TableResult, error)

	// SaveOverride freezes the given rows for the active tournament.
	// GoalsFor and GoalsAgainst are pinned to the values the table held
	// before the edit; everything else is taken as-is. Rows are re-sorted
	// with the league comparator before persisting.
	SaveOverride(ctx context.Context, rows []models.TableRow) (*TableResult, error)

	// ResetOverride discards the override; the table returns to auto mode.
	ResetOverride(ctx context.Context) error
}

type tableService struct {
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
	overrideRepo   repositories.OverrideRepository
}

func NewTableService(
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	overrideRepo repositories.OverrideRepository,
) TableService {
	return &tableService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		overrideRepo:   overrideRepo,
	}
}

func (s *tableService) active(ctx context.Context) (*models.Tournament, error) {
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

func (s *tableService) autoTable(ctx context.Context, tournament models.Tournament) ([]models.TableRow, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return standings.ForType(tournament.Type).Table(tournament, matches)
}

func (s *tableService) GetTable(ctx context.Context) (*TableResult, error) {
	tournament, err := s.active(ctx)
	if err != nil {
		return nil, err
	}

	override, err := s.overrideRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	// An override left behind by some other tournament is ignored, not
	// deleted: it becomes relevant again if that tournament is reactivated.
	if override != nil && override.TournamentID == tournament.ID {
		return &TableResult{
			TournamentID: tournament.ID,
			Manual:       true,
			Rows:         override.Rows,
		}, nil
	}

	rows, err := s.autoTable(ctx, *tournament)
	if err != nil {
		return nil, err
	}
	return &TableResult{TournamentID: tournament.ID, Rows: rows}, nil
}

func (s *tableService) SaveOverride(ctx context.Context, rows []models.TableRow) (*TableResult, error) {
	tournament, err := s.active(ctx)
	if err != nil {
		return nil, err
	}

	// Goal columns stay authoritative: pin them to the table as it stood
	// before this edit (the current override, or the auto table).
	var base []models.TableRow
	override, err := s.overrideRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if override != nil && override.TournamentID == tournament.ID {
		base = override.Rows
	} else {
		base, err = s.autoTable(ctx, *tournament)
		if err != nil {
			return nil, err
		}
	}
	goals := make(map[string]models.TableRow, len(base))
	for _, row := range base {
		goals[row.TeamID] = row
	}

	merged := make([]models.TableRow, 0, len(rows))
	for _, row := range rows {
		if row.Played < 0 || row.Won < 0 || row.Drawn < 0 || row.Lost < 0 || row.Points < 0 {
			return nil, validationError(ErrValidationFailed)
		}
		if prev, ok := goals[row.TeamID]; ok {
			row.GoalsFor = prev.GoalsFor
			row.GoalsAgainst = prev.GoalsAgainst
			row.GoalDifference = prev.GoalsFor - prev.GoalsAgainst
		}
		merged = append(merged, row)
	}
	standings.SortRows(merged)

	table := models.ManualTable{TournamentID: tournament.ID, Rows: merged}
	if err := s.overrideRepo.Save(ctx, table); err != nil {
		return nil, err
	}
	return &TableResult{TournamentID: tournament.ID, Manual: true, Rows: merged}, nil
}

func (s *tableService) ResetOverride(ctx context.Context) error {
	if _, err := s.active(ctx); err != nil {
		return err
	}
	return s.overrideRepo.Delete(ctx)
}
