package services

import (
	"github.com/amateur-sports/league-system/models"
)

// All live-match transitions funnel through the guards in this file. A match
// only ever moves Upcoming -> Live -> Completed; anything else is an
// ErrInvalidTransition, never a silent coercion.

func startMatch(m *models.Match) error {
	if m.TeamAID == m.TeamBID {
		return transitionError(ErrTeamsMustDiffer)
	}
	if m.Status != models.MatchUpcoming {
		return transitionError(ErrMatchNotUpcoming)
	}
	m.Status = models.MatchLive
	return nil
}

func editMatch(m *models.Match, teamAID, teamBID string) error {
	if m.Status != models.MatchUpcoming {
		return transitionError(ErrMatchNotUpcoming)
	}
	if teamAID == teamBID {
		return transitionError(ErrTeamsMustDiffer)
	}
	return nil
}

// scoreGoal increments exactly one side's counter by one. The goal record
// itself is appended by the caller.
func scoreGoal(m *models.Match, teamID string) error {
	if m.Status != models.MatchLive {
		return transitionError(ErrMatchNotLive)
	}
	switch teamID {
	case m.TeamAID:
		m.ScoreA++
	case m.TeamBID:
		m.ScoreB++
	default:
		return transitionError(ErrTeamNotInMatch)
	}
	return nil
}

// setPlayerOfTheMatch is the one mutation a Completed match still accepts.
// Last write wins.
func setPlayerOfTheMatch(m *models.Match, playerID string) error {
	if m.Status == models.MatchUpcoming {
		return transitionError(ErrMatchNotLive)
	}
	m.PlayerOfTheMatch = playerID
	return nil
}

func endMatch(m *models.Match) error {
	if m.Status != models.MatchLive {
		return transitionError(ErrMatchNotLive)
	}
	m.Status = models.MatchCompleted
	return nil
}
