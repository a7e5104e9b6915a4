package mapbox

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fire-spread-sim/internal/domain"
	"github.com/couchcryptid/fire-spread-sim/internal/observability"
)

type countingResolver struct {
	calls  int
	result domain.PlaceResult
	err    error
}

func (r *countingResolver) ReverseGeocode(context.Context, float64, float64) (domain.PlaceResult, error) {
	r.calls++
	return r.result, r.err
}

func TestCachedResolver_CachesHits(t *testing.T) {
	inner := &countingResolver{result: domain.PlaceResult{FormattedAddress: "Pacific Palisades"}}
	cached := NewCachedResolver(inner, 10, observability.NewMetricsForTesting())
	ctx := context.Background()

	first, err := cached.ReverseGeocode(ctx, 34.0556, -118.5334)
	require.NoError(t, err)
	second, err := cached.ReverseGeocode(ctx, 34.0556, -118.5334)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "second lookup must come from the cache")
}

func TestCachedResolver_DistinctCoordinatesMiss(t *testing.T) {
	inner := &countingResolver{result: domain.PlaceResult{FormattedAddress: "somewhere"}}
	cached := NewCachedResolver(inner, 10, observability.NewMetricsForTesting())
	ctx := context.Background()

	_, _ = cached.ReverseGeocode(ctx, 34.0556, -118.5334)
	_, _ = cached.ReverseGeocode(ctx, 34.0453, -118.5265)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedResolver_EmptyResultsNotCached(t *testing.T) {
	inner := &countingResolver{}
	cached := NewCachedResolver(inner, 10, observability.NewMetricsForTesting())
	ctx := context.Background()

	_, err := cached.ReverseGeocode(ctx, 0, 0)
	require.NoError(t, err)
	_, err = cached.ReverseGeocode(ctx, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls, "empty responses must be retried")
}

func TestCachedResolver_ErrorsNotCached(t *testing.T) {
	inner := &countingResolver{err: errors.New("rate limited")}
	cached := NewCachedResolver(inner, 10, observability.NewMetricsForTesting())
	ctx := context.Background()

	_, err := cached.ReverseGeocode(ctx, 1, 2)
	require.Error(t, err)
	_, err = cached.ReverseGeocode(ctx, 1, 2)
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := newLRUCache(2)
	a := domain.PlaceResult{FormattedAddress: "a"}
	b := domain.PlaceResult{FormattedAddress: "b"}
	c := domain.PlaceResult{FormattedAddress: "c"}

	cache.put("a", a)
	cache.put("b", b)

	// Touch "a" so "b" becomes least recently used.
	_, ok := cache.get("a")
	require.True(t, ok)

	cache.put("c", c)

	_, ok = cache.get("b")
	assert.False(t, ok, "least recently used entry must be evicted")
	got, ok := cache.get("a")
	require.True(t, ok)
	assert.Equal(t, a, got)
	got, ok = cache.get("c")
	require.True(t, ok)
	assert.Equal(t, c, got)
}

func TestLRUCache_UpdateExistingKey(t *testing.T) {
	cache := newLRUCache(2)
	cache.put("k", domain.PlaceResult{FormattedAddress: "old"})
	cache.put("k", domain.PlaceResult{FormattedAddress: "new"})

	got, ok := cache.get("k")
	require.True(t, ok)
	assert.Equal(t, "new", got.FormattedAddress)
}
