package cms_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLister struct {
	calls atomic.Int32
	fail  atomic.Bool
	gate  chan struct{}
}

func (l *countingLister) ListAll(ctx context.Context, entityType string) (cms.Listing, error) {
	l.calls.Add(1)
	if l.gate != nil {
		<-l.gate
	}
	if l.fail.Load() {
		return cms.Listing{}, &cms.FetchError{EntityType: entityType, Cause: cms.CauseStatus, StatusCode: 503}
	}
	return cms.Listing{EntityType: entityType, Items: []json.RawMessage{json.RawMessage(`{"_id":"1"}`)}}, nil
}

func TestNewCachedLister_ZeroTTLDisablesCache(t *testing.T) {
	next := &countingLister{}
	lister := cms.NewCachedLister(next, cms.NewMemoryStore(time.Minute), 0, logger.Nop())
	assert.Same(t, next, lister)
}

func TestCachedLister_ServesSnapshotWithinTTL(t *testing.T) {
	next := &countingLister{}
	lister := cms.NewCachedLister(next, cms.NewMemoryStore(time.Minute), time.Minute, logger.Nop())

	for i := 0; i < 3; i++ {
		listing, err := lister.ListAll(context.Background(), "clienttestimonials")
		require.NoError(t, err)
		assert.Equal(t, 1, listing.Len())
	}
	assert.Equal(t, int32(1), next.calls.Load())
}

func TestCachedLister_NeverCachesFailures(t *testing.T) {
	next := &countingLister{}
	next.fail.Store(true)
	lister := cms.NewCachedLister(next, cms.NewMemoryStore(time.Minute), time.Minute, logger.Nop())

	_, err := lister.ListAll(context.Background(), "clienttestimonials")
	require.ErrorIs(t, err, cms.ErrFetchFailed)

	next.fail.Store(false)
	listing, err := lister.ListAll(context.Background(), "clienttestimonials")
	require.NoError(t, err)
	assert.Equal(t, 1, listing.Len())
	assert.Equal(t, int32(2), next.calls.Load())
}

func TestCachedLister_CollapsesConcurrentMisses(t *testing.T) {
	next := &countingLister{gate: make(chan struct{})}
	lister := cms.NewCachedLister(next, cms.NewMemoryStore(time.Minute), time.Minute, logger.Nop())

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := lister.ListAll(context.Background(), "clienttestimonials")
			errs <- err
		}()
	}

	require.Eventually(t, func() bool { return next.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	// Give the remaining callers time to join the in-flight call.
	time.Sleep(20 * time.Millisecond)
	close(next.gate)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), next.calls.Load())
}

func TestCachedLister_CallerCancellationReturnsFetchFailed(t *testing.T) {
	next := &countingLister{gate: make(chan struct{})}
	defer close(next.gate)
	lister := cms.NewCachedLister(next, cms.NewMemoryStore(time.Minute), time.Minute, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lister.ListAll(ctx, "clienttestimonials")
	require.ErrorIs(t, err, cms.ErrFetchFailed)
	assert.Equal(t, cms.CauseTransport, cms.CauseOf(err))
}

func TestRedisStore_RoundTripsThroughCachedLister(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	next := &countingLister{}
	lister := cms.NewCachedLister(next, cms.NewRedisStore(client), time.Minute, logger.Nop())

	_, err := lister.ListAll(context.Background(), "clienttestimonials")
	require.NoError(t, err)
	assert.True(t, mr.Exists("cms:listing:clienttestimonials"))

	listing, err := lister.ListAll(context.Background(), "clienttestimonials")
	require.NoError(t, err)
	assert.Equal(t, 1, listing.Len())
	assert.Equal(t, int32(1), next.calls.Load())

	mr.FastForward(2 * time.Minute)
	_, err = lister.ListAll(context.Background(), "clienttestimonials")
	require.NoError(t, err)
	assert.Equal(t, int32(2), next.calls.Load())
}

func TestRedisStore_FallsBackUpstreamWhenRedisIsDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	next := &countingLister{}
	lister := cms.NewCachedLister(next, cms.NewRedisStore(client), time.Minute, logger.Nop())

	listing, err := lister.ListAll(context.Background(), "clienttestimonials")
	require.NoError(t, err)
	assert.Equal(t, 1, listing.Len())
}

func TestFetchError_IsFetchFailed(t *testing.T) {
	err := &cms.FetchError{EntityType: "x", Cause: cms.CauseNotFound, StatusCode: 404, Err: errors.New("missing")}
	assert.ErrorIs(t, err, cms.ErrFetchFailed)
	assert.Contains(t, err.Error(), "not_found")
	assert.Equal(t, cms.Cause(""), cms.CauseOf(errors.New("other")))
}
