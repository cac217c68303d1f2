package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/repositories"
	"github.com/amateur-sports/league-system/utils"
)

// FixtureRow is one parsed line of a fixture sheet. Date and Time are the
// raw text fields; either may be empty.
type FixtureRow struct {
	TeamAName string
	TeamBName string
	Date      string
	Time      string
}

// TeamSheet is one parsed block of a team sheet.
type TeamSheet struct {
	Name    string
	Logo    string
	Players []TeamSheetPlayer
}

type TeamSheetPlayer struct {
	Name     string
	Position models.PlayingPosition
	Jersey   int
	Mobile   string
}

// ImportReport summarizes a bulk import: rows committed and the per-row
// failures. Failing rows never block the rest.
type ImportReport struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

type ImportService interface {
	// ImportFixturesCSV parses and commits a fixture sheet under the
	// active tournament.
	ImportFixturesCSV(ctx context.Context, csvText string) (*ImportReport, error)
	// ImportFixtures commits already-parsed fixture rows.
	ImportFixtures(ctx context.Context, rows []FixtureRow) (*ImportReport, error)

	// ImportTeamsCSV parses and commits a team sheet: teams plus their
	// players, captain and manager defaulting to the first player.
	ImportTeamsCSV(ctx context.Context, csvText string) (*ImportReport, error)
	// ImportTeams commits already-parsed team sheets.
	ImportTeams(ctx context.Context, sheets []TeamSheet) (*ImportReport, error)
}

type importService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	playerRepo     repositories.PlayerRepository
	matchRepo      repositories.MatchRepository
	logger         *slog.Logger
	now            func() time.Time
}

func NewImportService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	logger *slog.Logger,
) ImportService {
	return &importService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// ParseFixtureCSV splits a fixture sheet into rows. Lines are
// "TeamAName, TeamBName[, YYYY-MM-DD[, HH:MM]]". A header line is skipped
// when the first line mentions "team". Blank lines are ignored; lines with
// fewer than two fields are reported, not fatal.
func ParseFixtureCSV(csvText string) ([]FixtureRow, []string) {
	lines := strings.Split(strings.TrimSpace(csvText), "\n")
	var rows []FixtureRow
	var errs []string

	start := 0
	if len(lines) > 0 && strings.Contains(strings.ToLower(lines[0]), "team") {
		start = 1
	}
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			errs = append(errs, fmt.Sprintf("line %d: not enough fields", i+1))
			continue
		}
		row := FixtureRow{TeamAName: parts[0], TeamBName: parts[1]}
		if len(parts) > 2 {
			row.Date = parts[2]
		}
		if len(parts) > 3 {
			row.Time = parts[3]
		}
		rows = append(rows, row)
	}
	return rows, errs
}

func (s *importService) ImportFixturesCSV(ctx context.Context, csvText string) (*ImportReport, error) {
	rows, parseErrs := ParseFixtureCSV(csvText)
	report, err := s.ImportFixtures(ctx, rows)
	if err != nil {
		return nil, err
	}
	report.Errors = append(parseErrs, report.Errors...)
	return report, nil
}

func (s *importService) ImportFixtures(ctx context.Context, rows []FixtureRow) (*ImportReport, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var tournament *models.Tournament
	for i := range tournaments {
		if tournaments[i].IsActive {
			tournament = &tournaments[i]
			break
		}
	}
	if tournament == nil {
		return nil, unknownReferenceError(ErrNoActiveTournament)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]models.Team, len(teams))
	for _, t := range teams {
		byName[strings.ToLower(t.Name)] = t
	}

	report := &ImportReport{Errors: []string{}}
	var created []models.Match
	for i, row := range rows {
		teamA, okA := byName[strings.ToLower(row.TeamAName)]
		if !okA {
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: team %q not found", i+1, row.TeamAName))
			continue
		}
		teamB, okB := byName[strings.ToLower(row.TeamBName)]
		if !okB {
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: team %q not found", i+1, row.TeamBName))
			continue
		}
		if teamA.ID == teamB.ID {
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: a team cannot play itself", i+1))
			continue
		}

		scheduledAt, err := s.scheduleFor(row, len(created))
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		created = append(created, models.Match{
			ID:           utils.NewID(),
			TournamentID: tournament.ID,
			TeamAID:      teamA.ID,
			TeamBID:      teamB.ID,
			Status:       models.MatchUpcoming,
			ScheduledAt:  scheduledAt,
		})
	}

	if len(created) > 0 {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.matchRepo.ReplaceAll(ctx, append(matches, created...)); err != nil {
			return nil, err
		}
	}
	report.Imported = len(created)

	s.logger.Info("fixtures imported",
		slog.String("tournament_id", tournament.ID),
		slog.Int("imported", report.Imported),
		slog.Int("failed", len(report.Errors)))
	return report, nil
}

// scheduleFor resolves a row's kickoff. A missing date falls back to today
// plus 3 days per already-accepted row; a missing time means 19:00.
func (s *importService) scheduleFor(row FixtureRow, accepted int) (time.Time, error) {
	hour, minute := 19, 0
	if row.Time != "" {
		t, err := time.Parse("15:04", row.Time)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time %q", row.Time)
		}
		hour, minute = t.Hour(), t.Minute()
	}

	now := s.now()
	if row.Date == "" {
		day := now.AddDate(0, 0, accepted*3)
		return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location()), nil
	}
	day, err := time.ParseInLocation("2006-01-02", row.Date, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", row.Date)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location()), nil
}

// ParsePosition maps a sheet token to a playing position. Both the short
// tokens (GK, DEF, MID, FWD) and full names are accepted, case-insensitive;
// anything else falls back to Forward.
func ParsePosition(token string) models.PlayingPosition {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "GK", "GOALKEEPER":
		return models.PositionGoalkeeper
	case "DEF", "DEFENDER":
		return models.PositionDefender
	case "MID", "MIDFIELDER":
		return models.PositionMidfielder
	case "FWD", "FORWARD":
		return models.PositionForward
	default:
		return models.PositionForward
	}
}

// ParseTeamCSV splits a team sheet into blocks. Each block starts with a
// "TEAM: Name[, Logo]" line followed by player lines
// "Name, Pos, Jersey[, Mobile]"; blank lines separate blocks.
func ParseTeamCSV(csvText string) ([]TeamSheet, []string) {
	lines := strings.Split(csvText, "\n")
	var sheets []TeamSheet
	var errs []string
	var current *TeamSheet

	flush := func() {
		if current == nil {
			return
		}
		if len(current.Players) == 0 {
			errs = append(errs, fmt.Sprintf("team %q has no players", current.Name))
		} else {
			sheets = append(sheets, *current)
		}
		current = nil
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			flush()
			continue
		}

		if len(line) >= 5 && strings.EqualFold(line[:5], "TEAM:") {
			flush()
			parts := strings.Split(strings.TrimSpace(line[5:]), ",")
			name := strings.TrimSpace(parts[0])
			if name == "" {
				errs = append(errs, fmt.Sprintf("line %d: team name missing", i+1))
				continue
			}
			current = &TeamSheet{Name: name}
			if len(parts) > 1 {
				current.Logo = strings.TrimSpace(parts[1])
			}
			continue
		}

		if current == nil {
			errs = append(errs, fmt.Sprintf("line %d: player before any TEAM: header", i+1))
			continue
		}

		parts := strings.Split(line, ",")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if parts[0] == "" {
			errs = append(errs, fmt.Sprintf("line %d: player name missing", i+1))
			continue
		}
		player := TeamSheetPlayer{
			Name:     parts[0],
			Position: models.PositionForward,
			// Jersey defaults to the player's position in the block.
			Jersey: len(current.Players) + 1,
		}
		if len(parts) > 1 && parts[1] != "" {
			player.Position = ParsePosition(parts[1])
		}
		if len(parts) > 2 && parts[2] != "" {
			if jersey, err := strconv.Atoi(parts[2]); err == nil && jersey >= 1 && jersey <= 99 {
				player.Jersey = jersey
			} else {
				errs = append(errs, fmt.Sprintf("line %d: invalid jersey %q", i+1, parts[2]))
			}
		}
		if len(parts) > 3 {
			player.Mobile = parts[3]
		}
		current.Players = append(current.Players, player)
	}
	flush()

	return sheets, errs
}

func (s *importService) ImportTeamsCSV(ctx context.Context, csvText string) (*ImportReport, error) {
	sheets, parseErrs := ParseTeamCSV(csvText)
	report, err := s.ImportTeams(ctx, sheets)
	if err != nil {
		return nil, err
	}
	report.Errors = append(parseErrs, report.Errors...)
	return report, nil
}

func (s *importService) ImportTeams(ctx context.Context, sheets []TeamSheet) (*ImportReport, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{Errors: []string{}}
	for _, sheet := range sheets {
		if sheet.Name == "" || len(sheet.Players) == 0 {
			report.Errors = append(report.Errors, fmt.Sprintf("team %q: name and players are required", sheet.Name))
			continue
		}

		var playerIDs []string
		for _, sp := range sheet.Players {
			player := models.Player{
				ID:           utils.NewID(),
				Name:         sp.Name,
				Position:     sp.Position,
				JerseyNumber: sp.Jersey,
				Mobile:       sp.Mobile,
			}
			players = append(players, player)
			playerIDs = append(playerIDs, player.ID)
		}

		teams = append(teams, models.Team{
			ID:        utils.NewID(),
			Name:      sheet.Name,
			Logo:      sheet.Logo,
			CaptainID: playerIDs[0],
			ManagerID: playerIDs[0],
			PlayerIDs: playerIDs,
		})
		report.Imported++
	}

	// Players first: a team whose roster ids are missing would be the worse
	// partial state.
	if err := s.playerRepo.ReplaceAll(ctx, players); err != nil {
		return nil, err
	}
	if err := s.teamRepo.ReplaceAll(ctx, teams); err != nil {
		return nil, err
	}

	s.logger.Info("teams imported",
		slog.Int("imported", report.Imported),
		slog.Int("failed", len(report.Errors)))
	return report, nil
}
