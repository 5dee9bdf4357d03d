package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	result := &domain.DetectionResult{
		Persona:    "homeowner",
		Confidence: 0.87,
		Method:     domain.MethodExternal,
	}

	require.NoError(t, cache.Set(ctx, "cameras for my house", result, time.Minute))

	got, err := cache.Get(ctx, "cameras for my house")
	require.NoError(t, err)
	assert.Equal(t, "homeowner", got.Persona)
	assert.Equal(t, 0.87, got.Confidence)
	assert.Equal(t, domain.MethodExternal, got.Method)
}

func TestMemoryCache_GetMiss(t *testing.T) {
	cache := NewMemoryCache()

	got, err := cache.Get(context.Background(), "never-stored")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	result := &domain.DetectionResult{Persona: "homeowner", Confidence: 0.9, Method: domain.MethodExternal}
	require.NoError(t, cache.Set(ctx, "short-lived", result, 20*time.Millisecond))

	got, err := cache.Get(ctx, "short-lived")
	require.NoError(t, err)
	assert.NotNil(t, got)

	time.Sleep(40 * time.Millisecond)

	got, err = cache.Get(ctx, "short-lived")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", &domain.DetectionResult{Persona: "homeowner", Confidence: 0.9}, time.Minute))

	first, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	first.Persona = "mutated"

	second, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "homeowner", second.Persona, "cached value must not be affected by caller mutation")
}

func TestMemoryCache_SetNilIsNoop(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", nil, time.Minute))
	assert.Equal(t, 0, cache.Size())
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", &domain.DetectionResult{Persona: "homeowner", Confidence: 0.9}, time.Minute))
	require.NoError(t, cache.Delete(ctx, "key"))

	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	// Deleting a missing key is not an error
	assert.NoError(t, cache.Delete(ctx, "key"))
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		key := fmt.Sprintf("key-%d", i)
		require.NoError(t, cache.Set(ctx, key, &domain.DetectionResult{Persona: "homeowner", Confidence: 0.5}, time.Minute))
	}
	assert.Equal(t, 5, cache.Size())

	cache.Clear()
	assert.Equal(t, 0, cache.Size())
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%3)
			for j := 0; j < 100; j++ {
				_ = cache.Set(ctx, key, &domain.DetectionResult{Persona: "homeowner", Confidence: 0.5}, time.Minute)
				_, _ = cache.Get(ctx, key)
				if j%10 == 0 {
					_ = cache.Delete(ctx, key)
				}
			}
		}(i)
	}
	wg.Wait()
}
