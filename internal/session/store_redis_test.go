package session

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/cardcheck/cardcheck/internal/eligibility"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	rec := Record{
		IdentityID:    42,
		Email:         "ada@example.com",
		LoggedIn:      true,
		LastSubmitted: &eligibility.Thresholds{CreditScore: 700, CreditLimit: 5000, CreditHistoryMonths: 24, Income: 50000},
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}

	if err := store.Save(ctx, "tok-1", rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get(ctx, "tok-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.IdentityID != rec.IdentityID || got.Email != rec.Email || !got.LoggedIn {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.LastSubmitted == nil || got.LastSubmitted.CreditScore != 700 {
		t.Fatalf("expected echoed thresholds, got %+v", got.LastSubmitted)
	}
}

func TestRedisStoreUnknownToken(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	if err := store.Save(ctx, "tok-1", Record{IdentityID: 1, LoggedIn: true}); err != nil {
		t.Fatalf("save: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, "tok-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expiry miss, got %v", err)
	}
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	if err := store.Save(ctx, "tok-1", Record{IdentityID: 1, LoggedIn: true}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "tok-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected miss after delete, got %v", err)
	}
}
