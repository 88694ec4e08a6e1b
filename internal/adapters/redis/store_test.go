package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turingtools/tapir/internal/adapters/redis"
	"github.com/turingtools/tapir/pkg/domain"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestStore_SaveLoad(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	res := &domain.Result{Input: "11", Tape: "111", Head: 2, Steps: 3, Accepted: true}
	require.NoError(t, store.Save(ctx, "run-1", res))

	got, err := store.Load(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, res, got)
}

func TestStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestStore_List(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "run-a", &domain.Result{Tape: "_"}))
	require.NoError(t, store.Save(ctx, "run-b", &domain.Result{Tape: "1"}))

	runs, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"run-a", "run-b"}, runs)
}

func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "run-a", &domain.Result{Tape: "_"}))
	require.NoError(t, store.Delete(ctx, "run-a"))

	_, err := store.Load(ctx, "run-a")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)

	runs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStore_TTLPruning(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "run-a", &domain.Result{Tape: "_"}))

	// Past the TTL the record itself is gone.
	mr.FastForward(5 * time.Second)

	_, err := store.Load(ctx, "run-a")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}
