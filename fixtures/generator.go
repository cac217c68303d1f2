package fixtures

import (
	"context"
	"time"

	"github.com/amateur-sports/league-system/models"
)

type GenerateParams struct {
	Tournament models.Tournament
	// Start is the kickoff of the first generated match. Subsequent matches
	// advance by Spacing.
	Start   time.Time
	Spacing time.Duration
	// NewID supplies ids for the generated matches.
	NewID func() string
}

// Generator produces a schedule of matches for a tournament from its stored
// team set. Generated matches are Upcoming with zero scores; committing them
// to the store is the caller's job.
type Generator interface {
	Generate(ctx context.Context, params GenerateParams) ([]models.Match, error)

	Name() string
}
