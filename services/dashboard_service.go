package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/repositories"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	playerRepo     repositories.PlayerRepository
	teamRepo       repositories.TeamRepository
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
	goalRepo       repositories.GoalRepository
	newsRepo       repositories.NewsRepository
}

func NewDashboardService(
	playerRepo repositories.PlayerRepository,
	teamRepo repositories.TeamRepository,
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	goalRepo repositories.GoalRepository,
	newsRepo repositories.NewsRepository,
) DashboardService {
	return &dashboardService{
		playerRepo:     playerRepo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		goalRepo:       goalRepo,
		newsRepo:       newsRepo,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		players, err := s.playerRepo.List(gCtx)
		if err != nil {
			return err
		}
		stats.PlayersTotal = len(players)
		return nil
	})
	g.Go(func() error {
		teams, err := s.teamRepo.List(gCtx)
		if err != nil {
			return err
		}
		stats.TeamsTotal = len(teams)
		return nil
	})
	g.Go(func() error {
		tournaments, err := s.tournamentRepo.List(gCtx)
		if err != nil {
			return err
		}
		stats.TournamentsTotal = len(tournaments)
		return nil
	})
	g.Go(func() error {
		matches, err := s.matchRepo.List(gCtx)
		if err != nil {
			return err
		}
		stats.MatchesTotal = len(matches)
		for _, m := range matches {
			switch m.Status {
			case models.MatchUpcoming:
				stats.MatchesUpcoming++
			case models.MatchLive:
				stats.MatchesLive++
			case models.MatchCompleted:
				stats.MatchesCompleted++
			}
		}
		return nil
	})
	g.Go(func() error {
		goals, err := s.goalRepo.List(gCtx)
		if err != nil {
			return err
		}
		stats.GoalsTotal = len(goals)
		return nil
	})
	g.Go(func() error {
		posts, err := s.newsRepo.List(gCtx)
		if err != nil {
			return err
		}
		stats.NewsTotal = len(posts)
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}
