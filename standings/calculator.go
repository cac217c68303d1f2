package standings

import (
	"errors"
	"sort"

	"github.com/amateur-sports/league-system/models"
)

// ErrTableUnavailable means the tournament type has no points table.
// Knockout and weekly tournaments deliberately produce none; callers render
// an "unavailable" view instead.
var ErrTableUnavailable = errors.New("points table not available for this tournament type")

// Producer derives the standings table for one tournament type.
type Producer interface {
	Table(tournament models.Tournament, matches []models.Match) ([]models.TableRow, error)
}

// ForType selects the producer for a tournament type. Every type has a
// producer; non-league ones return ErrTableUnavailable.
func ForType(t models.TournamentType) Producer {
	if t == models.TournamentLeague {
		return LeagueProducer{}
	}
	return unavailableProducer{}
}

type unavailableProducer struct{}

func (unavailableProducer) Table(models.Tournament, []models.Match) ([]models.TableRow, error) {
	return nil, ErrTableUnavailable
}

// SortRows orders rows by points, then goal difference, then goals for, all
// descending. The sort is stable so rows that tie on every criterion keep
// their prior relative order. Manual overrides are re-sorted with the same
// comparator after each edit.
func SortRows(rows []models.TableRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})
}
