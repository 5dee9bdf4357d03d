package perfstore

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "performance.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreAppend(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("assigns id and timestamp when missing", func(t *testing.T) {
		rec := domain.DetectionRecord{
			InputHash:  "abc123",
			Detected:   "homeowner",
			Expected:   "homeowner",
			Confidence: 0.87,
			Method:     domain.MethodRuleBased,
			Correct:    true,
		}
		require.NoError(t, store.Append(ctx, rec))

		got, err := store.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.NotEmpty(t, got[0].ID)
		assert.False(t, got[0].CreatedAt.IsZero())
		assert.Equal(t, "homeowner", got[0].Detected)
		assert.Equal(t, 0.87, got[0].Confidence)
		assert.True(t, got[0].Correct)
	})

	t.Run("keeps a caller-provided id", func(t *testing.T) {
		rec := domain.DetectionRecord{
			ID:         "fixed-id",
			InputHash:  "def456",
			Detected:   "business-owner",
			Expected:   "homeowner",
			Confidence: 0.4,
			Method:     domain.MethodExternal,
			CreatedAt:  time.Now().UTC(),
		}
		require.NoError(t, store.Append(ctx, rec))

		got, err := store.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "fixed-id", got[0].ID)
		assert.Equal(t, domain.MethodExternal, got[0].Method)
		assert.False(t, got[0].Correct)
	})

	t.Run("duplicate id is a store error", func(t *testing.T) {
		rec := domain.DetectionRecord{ID: "fixed-id", InputHash: "x", Detected: "homeowner", Expected: "homeowner", Method: domain.MethodRuleBased}
		err := store.Append(ctx, rec)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestStoreRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := domain.DetectionRecord{
			ID:         fmt.Sprintf("rec-%d", i),
			InputHash:  fmt.Sprintf("hash-%d", i),
			Detected:   "homeowner",
			Expected:   "homeowner",
			Confidence: 0.8,
			Method:     domain.MethodRuleBased,
			Correct:    true,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Append(ctx, rec))
	}

	t.Run("newest first with limit", func(t *testing.T) {
		got, err := store.Recent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "rec-4", got[0].ID)
		assert.Equal(t, "rec-3", got[1].ID)
		assert.Equal(t, "rec-2", got[2].ID)
	})

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		got, err := store.Recent(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, got, 5)
	})
}

func TestNewStoreValidation(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}
