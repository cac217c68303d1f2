package services

import (
	"errors"

	"github.com/amateur-sports/league-system/store"
)

// The four error kinds the engine surfaces. Narrower sentinels below wrap
// into these so handlers can map whole families at once.
var (
	// ErrQuotaExhausted re-exports the store-level failure: the write did
	// not fit and nothing was committed for that kind.
	ErrQuotaExhausted = store.ErrQuotaExhausted

	// ErrInvalidTransition means a state-machine guard rejected the
	// operation. The engine never silently coerces.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrUnknownReference means an id did not resolve. Mutation paths
	// reject with it; aggregation paths silently skip instead.
	ErrUnknownReference = errors.New("referenced entity not found")

	// ErrValidationFailed means a required field is missing or out of range.
	ErrValidationFailed = errors.New("validation failed")
)

var (
	// Validation
	ErrTournamentNameRequired = errors.New("tournament name is required")
	ErrTournamentTypeInvalid  = errors.New("invalid tournament type")
	ErrTournamentNeedsTeams   = errors.New("tournament needs at least two teams")
	ErrTeamNameRequired       = errors.New("team name is required")
	ErrTeamNeedsPlayers       = errors.New("team needs at least one player")
	ErrPlayerNameRequired     = errors.New("player name is required")
	ErrJerseyNumberInvalid    = errors.New("jersey number must be between 1 and 99")
	ErrPositionInvalid        = errors.New("invalid playing position")
	ErrGoalMinuteInvalid      = errors.New("goal minute must be between 0 and 89")
	ErrCaptionRequired        = errors.New("caption is required")
	ErrStoryMediaRequired     = errors.New("story media is required")

	// Unknown references
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrNewsPostNotFound   = errors.New("news post not found")
	ErrStoryNotFound      = errors.New("story not found")
	ErrNoActiveTournament = errors.New("no active tournament")

	// Match state machine
	ErrMatchNotUpcoming    = errors.New("match is not upcoming")
	ErrMatchNotLive        = errors.New("match is not live")
	ErrMatchAlreadyOver    = errors.New("match is already completed")
	ErrTeamsMustDiffer     = errors.New("a team cannot play itself")
	ErrTeamNotInTournament = errors.New("team does not participate in this tournament")
	ErrTeamNotInMatch      = errors.New("team is not playing in this match")
	ErrPlayerNotInMatch    = errors.New("player is not on either roster of this match")

	// Auth
	ErrInvalidCredentials = errors.New("invalid admin password")
)
