package services

import (
	"context"
	"sort"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/repositories"
)

type ScorerService interface {
	// TopScorers ranks players by goal count, most goals first, name as the
	// tie-break. Goals whose player no longer resolves are dropped; goals
	// of deleted matches still count for their scorer (the ranking is
	// player-centric, not match-centric).
	TopScorers(ctx context.Context) ([]models.ScorerEntry, error)
}

type scorerService struct {
	goalRepo   repositories.GoalRepository
	playerRepo repositories.PlayerRepository
	teamRepo   repositories.TeamRepository
}

func NewScorerService(
	goalRepo repositories.GoalRepository,
	playerRepo repositories.PlayerRepository,
	teamRepo repositories.TeamRepository,
) ScorerService {
	return &scorerService{goalRepo: goalRepo, playerRepo: playerRepo, teamRepo: teamRepo}
}

func (s *scorerService) TopScorers(ctx context.Context) ([]models.ScorerEntry, error) {
	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, g := range goals {
		counts[g.PlayerID]++
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ScorerEntry, 0, len(counts))
	for _, player := range players {
		count, ok := counts[player.ID]
		if !ok {
			continue
		}
		entry := models.ScorerEntry{Player: player, Goals: count}
		// First roster containing the player wins. A player is expected to
		// belong to one team at a time, but nothing enforces it; the
		// ambiguity is tolerated rather than rejected.
		for i := range teams {
			if teams[i].HasPlayer(player.ID) {
				entry.Team = &teams[i]
				break
			}
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Goals != entries[j].Goals {
			return entries[i].Goals > entries[j].Goals
		}
		return entries[i].Player.Name < entries[j].Player.Name
	})
	return entries, nil
}
