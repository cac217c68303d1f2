package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ReadUnsetKind(t *testing.T) {
	s := NewMemoryStore()

	doc, err := s.Read(context.Background(), KindPlayers)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryStore_WriteReplacesDocument(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, KindTeams, []byte(`[{"id":"t1"}]`)))
	require.NoError(t, s.Write(ctx, KindTeams, []byte(`[]`)))

	doc, err := s.Read(ctx, KindTeams)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), doc)
}

func TestMemoryStore_QuotaExhausted(t *testing.T) {
	s := NewMemoryStore(WithQuota(64))
	ctx := context.Background()

	big := make([]byte, 128)
	err := s.Write(ctx, KindMatches, big)
	assert.ErrorIs(t, err, ErrQuotaExhausted)

	// Failed write must not leave a partial document behind.
	doc, err := s.Read(ctx, KindMatches)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryStore_QuotaCountsReplacedDocumentOnce(t *testing.T) {
	s := NewMemoryStore(WithQuota(100))
	ctx := context.Background()

	doc := make([]byte, 80)
	require.NoError(t, s.Write(ctx, KindGoals, doc))
	// Replacing the same kind should not double-count the old document.
	require.NoError(t, s.Write(ctx, KindGoals, doc))
}

func TestMemoryStore_ClearAll(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, KindPlayers, []byte(`[]`)))
	require.NoError(t, s.Write(ctx, KindAuth, []byte(`"true"`)))
	require.NoError(t, s.ClearAll(ctx))

	for _, kind := range Kinds {
		doc, err := s.Read(ctx, kind)
		require.NoError(t, err)
		assert.Nil(t, doc, "kind %s should be unset", kind)
	}
}

func TestMemoryStore_ReadReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, KindNews, []byte(`[1]`)))
	doc, err := s.Read(ctx, KindNews)
	require.NoError(t, err)
	doc[0] = 'X'

	again, err := s.Read(ctx, KindNews)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), again)
}
