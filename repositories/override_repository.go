package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amateur-sports/league-system/models"
	"github.com/amateur-sports/league-system/store"
)

// OverrideRepository persists the manual standings snapshot. Unlike the
// entity collections the document is a single object, not an array, and at
// most one override exists at a time (keyed by its tournament id).
type OverrideRepository interface {
	// Get returns the stored override, or nil when none exists.
	Get(ctx context.Context) (*models.ManualTable, error)
	Save(ctx context.Context, table models.ManualTable) error
	Delete(ctx context.Context) error
}

type overrideRepository struct {
	store store.Store
}

func NewOverrideRepository(s store.Store) OverrideRepository {
	return &overrideRepository{store: s}
}

func (r *overrideRepository) Get(ctx context.Context) (*models.ManualTable, error) {
	doc, err := r.store.Read(ctx, store.KindOverrides)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", store.KindOverrides, err)
	}
	if len(doc) == 0 {
		return nil, nil
	}

	var table models.ManualTable
	if err := json.Unmarshal(doc, &table); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", store.KindOverrides, err)
	}
	return &table, nil
}

func (r *overrideRepository) Save(ctx context.Context, table models.ManualTable) error {
	if table.Rows == nil {
		table.Rows = []models.TableRow{}
	}
	doc, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", store.KindOverrides, err)
	}
	if err := r.store.Write(ctx, store.KindOverrides, doc); err != nil {
		return fmt.Errorf("failed to write %s: %w", store.KindOverrides, err)
	}
	return nil
}

func (r *overrideRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, store.KindOverrides)
}
