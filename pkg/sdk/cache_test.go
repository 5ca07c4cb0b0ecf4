package sdk_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesaops/mesa/pkg/sdk"
)

func countingFetch(calls *atomic.Int32, value any) sdk.FetchFunc {
	return func(context.Context) (any, error) {
		calls.Add(1)
		return value, nil
	}
}

func TestQueryServesCachedValue(t *testing.T) {
	c := sdk.NewCache()
	ctx := context.Background()
	var calls atomic.Int32
	fetch := countingFetch(&calls, "menu-v1")
	tags := []sdk.Tag{sdk.TypeTag(sdk.TagMenu)}

	v, err := c.Query(ctx, "/api/menu", tags, fetch)
	require.NoError(t, err)
	assert.Equal(t, "menu-v1", v)

	v, err = c.Query(ctx, "/api/menu", tags, fetch)
	require.NoError(t, err)
	assert.Equal(t, "menu-v1", v)
	assert.Equal(t, int32(1), calls.Load(), "second query must be served from cache")
}

func TestQueryKeysIncludeArguments(t *testing.T) {
	c := sdk.NewCache()
	ctx := context.Background()
	var calls atomic.Int32
	tags := []sdk.Tag{sdk.TypeTag(sdk.TagOrder)}

	_, err := c.Query(ctx, "/api/orders?status=pending", tags, countingFetch(&calls, "pending"))
	require.NoError(t, err)
	_, err = c.Query(ctx, "/api/orders?status=served", tags, countingFetch(&calls, "served"))
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load(), "distinct arguments are distinct entries")
	assert.Equal(t, 2, c.Len())
}

func TestMutateEvictsUnwatchedEntries(t *testing.T) {
	c := sdk.NewCache()
	ctx := context.Background()
	var calls atomic.Int32
	fetch := countingFetch(&calls, "menu-v1")
	tags := []sdk.Tag{sdk.TypeTag(sdk.TagMenu)}

	_, err := c.Query(ctx, "/api/menu", tags, fetch)
	require.NoError(t, err)

	err = c.Mutate(ctx, []sdk.Tag{sdk.TypeTag(sdk.TagMenu)}, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len(), "unwatched entry should be evicted")

	_, err = c.Query(ctx, "/api/menu", tags, fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "post-mutation query must refetch")
}

func TestFailedMutationInvalidatesNothing(t *testing.T) {
	c := sdk.NewCache()
	ctx := context.Background()
	var calls atomic.Int32
	tags := []sdk.Tag{sdk.TypeTag(sdk.TagMenu)}

	_, err := c.Query(ctx, "/api/menu", tags, countingFetch(&calls, "menu-v1"))
	require.NoError(t, err)

	wantErr := assert.AnError
	err = c.Mutate(ctx, []sdk.Tag{sdk.TypeTag(sdk.TagMenu)}, func(context.Context) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, c.Len(), "failed mutation must leave the cache intact")
}

func TestDetailTagDoesNotInvalidateLists(t *testing.T) {
	c := sdk.NewCache()
	ctx := context.Background()
	var listCalls, detailCalls atomic.Int32

	_, err := c.Query(ctx, "/api/menu", []sdk.Tag{sdk.TypeTag(sdk.TagMenu)}, countingFetch(&listCalls, "list"))
	require.NoError(t, err)
	_, err = c.Query(ctx, "/api/menu/m1", []sdk.Tag{sdk.IDTag(sdk.TagMenu, "m1")}, countingFetch(&detailCalls, "detail"))
	require.NoError(t, err)
	_, err = c.Query(ctx, "/api/menu/m2", []sdk.Tag{sdk.IDTag(sdk.TagMenu, "m2")}, countingFetch(&detailCalls, "detail"))
	require.NoError(t, err)

	// Updating m1 drops only the m1 detail entry.
	c.Invalidate(ctx, []sdk.Tag{sdk.IDTag(sdk.TagMenu, "m1")})
	assert.Equal(t, 2, c.Len())

	_, err = c.Query(ctx, "/api/menu", []sdk.Tag{sdk.TypeTag(sdk.TagMenu)}, countingFetch(&listCalls, "list"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), listCalls.Load(), "list must survive a detail-tag invalidation")
}

func TestTypeTagInvalidatesDetailEntries(t *testing.T) {
	c := sdk.NewCache()
	ctx := context.Background()
	var calls atomic.Int32

	_, err := c.Query(ctx, "/api/menu/m1", []sdk.Tag{sdk.IDTag(sdk.TagMenu, "m1")}, countingFetch(&calls, "detail"))
	require.NoError(t, err)

	c.Invalidate(ctx, []sdk.Tag{sdk.TypeTag(sdk.TagMenu)})
	assert.Equal(t, 0, c.Len(), "type-level tag covers detail entries")
}

func TestOrderMutationReachesSalesAndAnalyticsNotMenu(t *testing.T) {
	c := sdk.NewCache()
	ctx := context.Background()
	var menuCalls, salesCalls atomic.Int32

	_, err := c.Query(ctx, "/api/menu", []sdk.Tag{sdk.TypeTag(sdk.TagMenu)}, countingFetch(&menuCalls, "menu"))
	require.NoError(t, err)
	_, err = c.Query(ctx, "/api/sales/summary", []sdk.Tag{sdk.TypeTag(sdk.TagSales)}, countingFetch(&salesCalls, "sales"))
	require.NoError(t, err)
	_, err = c.Query(ctx, "/api/analytics/dashboard", []sdk.Tag{sdk.TypeTag(sdk.TagAnalytics)}, countingFetch(&salesCalls, "dash"))
	require.NoError(t, err)

	createTags := []sdk.Tag{sdk.TypeTag(sdk.TagOrder), sdk.TypeTag(sdk.TagAnalytics), sdk.TypeTag(sdk.TagSales)}
	err = c.Mutate(ctx, createTags, func(context.Context) error { return nil })
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len(), "sales and analytics evicted, menu kept")
	_, err = c.Query(ctx, "/api/menu", []sdk.Tag{sdk.TypeTag(sdk.TagMenu)}, countingFetch(&menuCalls, "menu"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), menuCalls.Load())
}

func TestWatchedEntryRefetchesOnInvalidation(t *testing.T) {
	c := sdk.NewCache()
	ctx := context.Background()
	var calls atomic.Int32
	updates := make(chan any, 4)

	fetch := func(context.Context) (any, error) {
		n := calls.Add(1)
		return int(n), nil
	}
	w, err := c.NewWatch(ctx, "/api/analytics/dashboard", []sdk.Tag{sdk.TypeTag(sdk.TagAnalytics)}, fetch,
		func(v any, err error) {
			assert.NoError(t, err)
			updates <- v
		})
	require.NoError(t, err)
	defer w.Close()

	select {
	case v := <-updates:
		assert.Equal(t, 1, v)
	case <-time.After(time.Second):
		t.Fatal("initial update not delivered")
	}

	c.Invalidate(ctx, []sdk.Tag{sdk.TypeTag(sdk.TagAnalytics)})

	select {
	case v := <-updates:
		assert.Equal(t, 2, v, "invalidation must deliver a freshly fetched value")
	case <-time.After(time.Second):
		t.Fatal("refetch update not delivered")
	}
	assert.Equal(t, 1, c.Len(), "watched entry is retained, not evicted")
}

func TestWatchSurvivesInvalidationDuringInitialFetch(t *testing.T) {
	c := sdk.NewCache()
	ctx := context.Background()
	release := make(chan struct{})
	var calls, notified atomic.Int32

	// The first fetch blocks until released; refetches return immediately.
	fetch := func(context.Context) (any, error) {
		n := calls.Add(1)
		if n == 1 {
			<-release
		}
		return int(n), nil
	}

	var w *sdk.Watch
	started := make(chan error, 1)
	go func() {
		var err error
		w, err = c.NewWatch(ctx, "/api/analytics/dashboard", []sdk.Tag{sdk.TypeTag(sdk.TagAnalytics)}, fetch,
			func(v any, err error) {
				if err == nil {
					notified.Add(1)
				}
			})
		started <- err
	}()

	// Invalidate while the initial fetch is still in flight. The entry has
	// a live subscriber already, so it must be retained and refetched, not
	// evicted.
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond)
	c.Invalidate(ctx, []sdk.Tag{sdk.TypeTag(sdk.TagAnalytics)})
	close(release)

	select {
	case err := <-started:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch never finished starting")
	}
	defer w.Close()
	require.Eventually(t, func() bool { return notified.Load() >= 1 }, time.Second, time.Millisecond)

	// Later invalidations must still reach the watch.
	before := notified.Load()
	c.Invalidate(ctx, []sdk.Tag{sdk.TypeTag(sdk.TagAnalytics)})
	require.Eventually(t, func() bool { return notified.Load() > before },
		time.Second, time.Millisecond, "watch no longer notified after a mid-fetch invalidation")
	assert.Equal(t, 1, c.Len())
}

func TestPausedWatchIssuesNoFetch(t *testing.T) {
	c := sdk.NewCache()
	ctx := context.Background()
	var calls atomic.Int32
	updates := make(chan any, 1)

	w, err := c.NewWatch(ctx, "/api/sales", []sdk.Tag{sdk.TypeTag(sdk.TagSales)},
		countingFetch(&calls, "sales"),
		func(v any, err error) { updates <- v },
		sdk.Paused())
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, int32(0), calls.Load(), "paused watch must not fetch")
	assert.Equal(t, 0, c.Len())

	require.NoError(t, w.Start(ctx))
	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("update not delivered after Start")
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestClosedWatchEntryBecomesEvictable(t *testing.T) {
	c := sdk.NewCache()
	ctx := context.Background()
	var calls atomic.Int32

	w, err := c.NewWatch(ctx, "/api/sales", []sdk.Tag{sdk.TypeTag(sdk.TagSales)},
		countingFetch(&calls, "sales"), func(any, error) {})
	require.NoError(t, err)
	w.Close()

	c.Invalidate(ctx, []sdk.Tag{sdk.TypeTag(sdk.TagSales)})
	assert.Equal(t, 0, c.Len(), "entry without watches is evicted on invalidation")
}

func TestResetDropsEverything(t *testing.T) {
	c := sdk.NewCache()
	ctx := context.Background()
	var calls atomic.Int32

	for _, key := range []string{"/api/menu", "/api/orders", "/api/staff"} {
		_, err := c.Query(ctx, key, []sdk.Tag{sdk.TypeTag(sdk.TagMenu)}, countingFetch(&calls, key))
		require.NoError(t, err)
	}
	require.Equal(t, 3, c.Len())

	c.Reset()
	assert.Equal(t, 0, c.Len())
}
