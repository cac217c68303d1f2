package store

import (
	"context"
	"errors"
)

// Kind identifies one persisted collection. Each kind is stored whole under
// its own namespaced key; a write replaces the previous document atomically.
type Kind string

const (
	KindPlayers     Kind = "asl_players"
	KindTeams       Kind = "asl_teams"
	KindTournaments Kind = "asl_tournaments"
	KindMatches     Kind = "asl_matches"
	KindGoals       Kind = "asl_goals"
	KindNews        Kind = "asl_news"
	KindStories     Kind = "asl_media_stories"
	KindOverrides   Kind = "asl_manual_table"
	KindAuth        Kind = "asl_admin_auth"
)

// Kinds lists every collection key, in a fixed order.
var Kinds = []Kind{
	KindPlayers,
	KindTeams,
	KindTournaments,
	KindMatches,
	KindGoals,
	KindNews,
	KindStories,
	KindOverrides,
	KindAuth,
}

// ErrQuotaExhausted is returned by Write when the backing store cannot
// accommodate the document. The previous document for the kind is left
// intact; a write is all-or-nothing per kind.
var ErrQuotaExhausted = errors.New("store quota exhausted")

// Store is namespaced key/value persistence for JSON documents. There are no
// cross-kind transactions: callers that touch several kinds must order their
// writes so that the least harmful partial state is observable.
type Store interface {
	// Read returns the current document for the kind, or nil if unset.
	Read(ctx context.Context, kind Kind) ([]byte, error)

	// Write atomically replaces the document for the kind.
	Write(ctx context.Context, kind Kind, doc []byte) error

	// Delete removes the document for the kind. Deleting an unset kind is
	// not an error.
	Delete(ctx context.Context, kind Kind) error

	// ClearAll removes the documents of every kind.
	ClearAll(ctx context.Context) error
}
