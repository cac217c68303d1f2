package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amateur-sports/league-system/store"
)

// readCollection unmarshals the stored snapshot for a kind. An unset kind
// reads as an empty slice, never nil, so callers can range without checks.
func readCollection[T any](ctx context.Context, s store.Store, kind store.Kind) ([]T, error) {
	doc, err := s.Read(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", kind, err)
	}
	if len(doc) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(doc, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", kind, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// writeCollection replaces the stored snapshot for a kind. nil is persisted
// as an empty array so the on-disk document is always a JSON array.
func writeCollection[T any](ctx context.Context, s store.Store, kind store.Kind, records []T) error {
	if records == nil {
		records = []T{}
	}
	doc, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", kind, err)
	}
	if err := s.Write(ctx, kind, doc); err != nil {
		return fmt.Errorf("failed to write %s: %w", kind, err)
	}
	return nil
}
