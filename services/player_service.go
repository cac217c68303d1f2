package services

import (
	"context"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/repositories"
	"github.com/amateur-sports/league-system/utils"
)

type CreatePlayerInput struct {
	Name         string                 `json:"name"`
	Position     models.PlayingPosition `json:"position"`
	JerseyNumber int                    `json:"jerseyNumber"`
	Mobile       string                 `json:"mobile"`
	Photo        string                 `json:"photo"`
}

type PlayerService interface {
	List(ctx context.Context) ([]models.Player, error)
	Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	Update(ctx context.Context, id string, input CreatePlayerInput) (*models.Player, error)
	// Delete removes the player record only; team rosters keep the id and
	// readers render it as unknown.
	Delete(ctx context.Context, id string) error
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{playerRepo: playerRepo}
}

func (s *playerService) List(ctx context.Context) ([]models.Player, error) {
	return s.playerRepo.List(ctx)
}

func validatePlayer(input CreatePlayerInput) error {
	if input.Name == "" {
		return validationError(ErrPlayerNameRequired)
	}
	if !input.Position.Valid() {
		return validationError(ErrPositionInvalid)
	}
	if input.JerseyNumber < 1 || input.JerseyNumber > 99 {
		return validationError(ErrJerseyNumberInvalid)
	}
	return nil
}

func (s *playerService) Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	if err := validatePlayer(input); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	player := models.Player{
		ID:           utils.NewID(),
		Name:         input.Name,
		Position:     input.Position,
		JerseyNumber: input.JerseyNumber,
		Mobile:       input.Mobile,
		Photo:        input.Photo,
	}
	if err := s.playerRepo.ReplaceAll(ctx, append(players, player)); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *playerService) Update(ctx context.Context, id string, input CreatePlayerInput) (*models.Player, error) {
	if err := validatePlayer(input); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range players {
		if players[i].ID != id {
			continue
		}
		players[i].Name = input.Name
		players[i].Position = input.Position
		players[i].JerseyNumber = input.JerseyNumber
		players[i].Mobile = input.Mobile
		players[i].Photo = input.Photo
		if err := s.playerRepo.ReplaceAll(ctx, players); err != nil {
			return nil, err
		}
		return &players[i], nil
	}
	return nil, unknownReferenceError(ErrPlayerNotFound)
}

func (s *playerService) Delete(ctx context.Context, id string) error {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return err
	}
	remaining := players[:0]
	found := false
	for _, p := range players {
		if p.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, p)
	}
	if !found {
		return unknownReferenceError(ErrPlayerNotFound)
	}
	return s.playerRepo.ReplaceAll(ctx, remaining)
}
