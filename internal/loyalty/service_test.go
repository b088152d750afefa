package loyalty_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/tatilgo/backend-travel/internal/loyalty"
)

type fakeStore struct {
	miles map[uuid.UUID]int64
	gets  int
}

func (f *fakeStore) GetMiles(_ context.Context, userID uuid.UUID) (int64, error) {
	f.gets++
	return f.miles[userID], nil
}

func (f *fakeStore) AddMiles(_ context.Context, userID uuid.UUID, delta int64) (int64, error) {
	f.miles[userID] += delta
	return f.miles[userID], nil
}

func newTestService(t *testing.T) (*loyalty.Service, *fakeStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := &fakeStore{miles: map[uuid.UUID]int64{}}
	return &loyalty.Service{Store: store, R: client, TTL: time.Minute}, store
}

func TestBalanceCachesResult(t *testing.T) {
	svc, store := newTestService(t)
	userID := uuid.New()
	store.miles[userID] = 7500

	miles, err := svc.Balance(context.Background(), userID)
	require.NoError(t, err)
	require.EqualValues(t, 7500, miles)
	require.Equal(t, 1, store.gets)

	// Second lookup must come from the cache.
	miles, err = svc.Balance(context.Background(), userID)
	require.NoError(t, err)
	require.EqualValues(t, 7500, miles)
	require.Equal(t, 1, store.gets)
}

func TestEarnInvalidatesCache(t *testing.T) {
	svc, store := newTestService(t)
	userID := uuid.New()
	store.miles[userID] = 1000

	_, err := svc.Balance(context.Background(), userID)
	require.NoError(t, err)

	balance, err := svc.Earn(context.Background(), userID, 500)
	require.NoError(t, err)
	require.EqualValues(t, 1500, balance)

	miles, err := svc.Balance(context.Background(), userID)
	require.NoError(t, err)
	require.EqualValues(t, 1500, miles)
	require.Equal(t, 2, store.gets)
}

func TestBalanceUnknownUserIsZero(t *testing.T) {
	svc, _ := newTestService(t)
	miles, err := svc.Balance(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Zero(t, miles)
}
