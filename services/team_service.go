package services

import (
	"context"
	"fmt"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/repositories"
	"github.com/amateur-sports/league-system/utils"
)

type CreateTeamInput struct {
	Name      string   `json:"name"`
	Logo      string   `json:"logo"`
	CaptainID string   `json:"captainId"`
	ManagerID string   `json:"managerId"`
	PlayerIDs []string `json:"playerIds"`
}

type TeamService interface {
	List(ctx context.Context) ([]models.Team, error)
	// Profile resolves the team's roster, captain and manager. Dangling
	// player ids produce placeholder entries instead of errors so readers
	// can render them as unknown.
	Profile(ctx context.Context, id string) (*models.TeamProfile, error)
	Create(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	Update(ctx context.Context, id string, input CreateTeamInput) (*models.Team, error)
	// Delete removes the team only. Tournaments and matches keep their
	// references; readers tolerate the dangling ids.
	Delete(ctx context.Context, id string) error
}

type teamService struct {
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
}

func NewTeamService(teamRepo repositories.TeamRepository, playerRepo repositories.PlayerRepository) TeamService {
	return &teamService{teamRepo: teamRepo, playerRepo: playerRepo}
}

func (s *teamService) List(ctx context.Context) ([]models.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *teamService) Profile(ctx context.Context, id string) (*models.TeamProfile, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var team *models.Team
	for i := range teams {
		if teams[i].ID == id {
			team = &teams[i]
			break
		}
	}
	if team == nil {
		return nil, unknownReferenceError(ErrTeamNotFound)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	profile := &models.TeamProfile{Team: *team}
	for _, playerID := range team.PlayerIDs {
		if p, ok := byID[playerID]; ok {
			profile.Roster = append(profile.Roster, p)
		} else {
			profile.Roster = append(profile.Roster, models.Player{ID: playerID, Name: "Unknown"})
		}
	}
	if p, ok := byID[team.CaptainID]; ok {
		profile.Captain = &p
	}
	if p, ok := byID[team.ManagerID]; ok {
		profile.Manager = &p
	}
	return profile, nil
}

func (s *teamService) validate(ctx context.Context, input CreateTeamInput) error {
	if input.Name == "" {
		return validationError(ErrTeamNameRequired)
	}
	if len(input.PlayerIDs) == 0 {
		return validationError(ErrTeamNeedsPlayers)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(players))
	for _, p := range players {
		known[p.ID] = true
	}
	for _, playerID := range input.PlayerIDs {
		if !known[playerID] {
			return unknownReferenceError(fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID))
		}
	}
	return nil
}

// applyDefaults fills captain and manager with the first rostered player
// when unset, matching the bulk-import behavior.
func applyDefaults(team *models.Team) {
	if team.CaptainID == "" {
		team.CaptainID = team.PlayerIDs[0]
	}
	if team.ManagerID == "" {
		team.ManagerID = team.PlayerIDs[0]
	}
}

func (s *teamService) Create(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	team := models.Team{
		ID:        utils.NewID(),
		Name:      input.Name,
		Logo:      input.Logo,
		CaptainID: input.CaptainID,
		ManagerID: input.ManagerID,
		PlayerIDs: input.PlayerIDs,
	}
	applyDefaults(&team)

	if err := s.teamRepo.ReplaceAll(ctx, append(teams, team)); err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *teamService) Update(ctx context.Context, id string, input CreateTeamInput) (*models.Team, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		if teams[i].ID != id {
			continue
		}
		teams[i].Name = input.Name
		teams[i].Logo = input.Logo
		teams[i].CaptainID = input.CaptainID
		teams[i].ManagerID = input.ManagerID
		teams[i].PlayerIDs = input.PlayerIDs
		applyDefaults(&teams[i])
		if err := s.teamRepo.ReplaceAll(ctx, teams); err != nil {
			return nil, err
		}
		return &teams[i], nil
	}
	return nil, unknownReferenceError(ErrTeamNotFound)
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return err
	}
	remaining := teams[:0]
	found := false
	for _, t := range teams {
		if t.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, t)
	}
	if !found {
		return unknownReferenceError(ErrTeamNotFound)
	}
	return s.teamRepo.ReplaceAll(ctx, remaining)
}
