package fixtures

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/amateur-sports/league-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("m%d", n)
	}
}

func TestRoundRobin_PairCount(t *testing.T) {
	gen := NewRoundRobinGenerator()
	start := time.Date(2026, 8, 1, 19, 0, 0, 0, time.UTC)

	for teams, want := range map[int]int{2: 1, 3: 3, 4: 6, 6: 15} {
		ids := make([]string, teams)
		for i := range ids {
			ids[i] = fmt.Sprintf("t%d", i+1)
		}
		matches, err := gen.Generate(context.Background(), GenerateParams{
			Tournament: models.Tournament{ID: "T", TeamIDs: ids},
			Start:      start,
			NewID:      sequentialIDs(),
		})
		require.NoError(t, err)
		assert.Len(t, matches, want, "%d teams", teams)
	}
}

func TestRoundRobin_EveryUnorderedPairOnce(t *testing.T) {
	gen := NewRoundRobinGenerator()
	matches, err := gen.Generate(context.Background(), GenerateParams{
		Tournament: models.Tournament{ID: "T", TeamIDs: []string{"a", "b", "c"}},
		Start:      time.Now(),
		NewID:      sequentialIDs(),
	})
	require.NoError(t, err)

	pairs := make(map[string]bool)
	for _, m := range matches {
		assert.NotEqual(t, m.TeamAID, m.TeamBID)
		pairs[m.TeamAID+"|"+m.TeamBID] = true
	}
	// Stored order decides sides: the earlier-listed team is always team A.
	assert.Equal(t, map[string]bool{"a|b": true, "a|c": true, "b|c": true}, pairs)
}

func TestRoundRobin_MatchDefaults(t *testing.T) {
	gen := NewRoundRobinGenerator()
	start := time.Date(2026, 8, 1, 19, 0, 0, 0, time.UTC)
	matches, err := gen.Generate(context.Background(), GenerateParams{
		Tournament: models.Tournament{ID: "T", TeamIDs: []string{"a", "b", "c"}},
		Start:      start,
		NewID:      sequentialIDs(),
	})
	require.NoError(t, err)

	for i, m := range matches {
		assert.Equal(t, "T", m.TournamentID)
		assert.Equal(t, models.MatchUpcoming, m.Status)
		assert.Zero(t, m.ScoreA)
		assert.Zero(t, m.ScoreB)
		assert.Equal(t, start.Add(time.Duration(i)*DefaultSpacing), m.ScheduledAt)
	}
}

func TestRoundRobin_CustomSpacing(t *testing.T) {
	gen := NewRoundRobinGenerator()
	start := time.Date(2026, 8, 1, 19, 0, 0, 0, time.UTC)
	matches, err := gen.Generate(context.Background(), GenerateParams{
		Tournament: models.Tournament{ID: "T", TeamIDs: []string{"a", "b", "c"}},
		Start:      start,
		Spacing:    24 * time.Hour,
		NewID:      sequentialIDs(),
	})
	require.NoError(t, err)
	assert.Equal(t, start.Add(48*time.Hour), matches[2].ScheduledAt)
}

func TestRoundRobin_TooFewTeams(t *testing.T) {
	gen := NewRoundRobinGenerator()
	_, err := gen.Generate(context.Background(), GenerateParams{
		Tournament: models.Tournament{ID: "T", TeamIDs: []string{"a"}},
		Start:      time.Now(),
		NewID:      sequentialIDs(),
	})
	assert.Error(t, err)
}
