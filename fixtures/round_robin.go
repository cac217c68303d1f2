package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/amateur-sports/league-system/models"
)

// DefaultSpacing is the gap between consecutive generated kickoffs.
const DefaultSpacing = 3 * 24 * time.Hour

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() Generator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) Name() string {
	return "RoundRobin"
}

// Generate emits a single round-robin: one match per unordered pair of
// teams, in stored team order, with the earlier-listed team as team A. The
// generator is total over the team set; it does not check that the teams
// still resolve.
func (g *RoundRobinGenerator) Generate(_ context.Context, params GenerateParams) ([]models.Match, error) {
	teamIDs := params.Tournament.TeamIDs
	if len(teamIDs) < 2 {
		return nil, fmt.Errorf("round robin needs at least 2 teams, got %d", len(teamIDs))
	}
	if params.NewID == nil {
		return nil, fmt.Errorf("round robin: NewID is required")
	}

	spacing := params.Spacing
	if spacing <= 0 {
		spacing = DefaultSpacing
	}

	matches := make([]models.Match, 0, len(teamIDs)*(len(teamIDs)-1)/2)
	kickoff := params.Start
	for i := 0; i < len(teamIDs); i++ {
		for j := i + 1; j < len(teamIDs); j++ {
			matches = append(matches, models.Match{
				ID:           params.NewID(),
				TournamentID: params.Tournament.ID,
				TeamAID:      teamIDs[i],
				TeamBID:      teamIDs[j],
				ScoreA:       0,
				ScoreB:       0,
				Status:       models.MatchUpcoming,
				ScheduledAt:  kickoff,
			})
			kickoff = kickoff.Add(spacing)
		}
	}

	return matches, nil
}
