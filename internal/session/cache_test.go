package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/adapters/storage/memkv"
)

func testCache(t *testing.T) (*Cache, *memkv.Store) {
	t.Helper()
	st := memkv.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCache(st, logger, DefaultTTL), st
}

func TestKey_Normalization(t *testing.T) {
	a := Key("  What   NEXT? ", "0:0-fool:U")
	b := Key("what next?", "0:0-fool:U")
	if a != b {
		t.Errorf("keys differ: %q vs %q", a, b)
	}
	if a != "what next?::0:0-fool:U" {
		t.Errorf("unexpected key: %q", a)
	}
}

func TestCache_UpsertAndLoad(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	c.MarkRewardUnlocked(ctx, "Will it rain?", "sig-1")

	st := c.Load(ctx, Key("Will it rain?", "sig-1"))
	if st == nil {
		t.Fatal("expected session after unlock")
	}
	if !st.HasUnlockedReward {
		t.Error("reward flag not set")
	}
	if st.Question != "Will it rain?" {
		t.Errorf("raw question not preserved: %q", st.Question)
	}

	// Second write merges into the same slot.
	c.StoreDeepAnalysis(ctx, "Will it rain?", "sig-1", "A long narrative.")

	st = c.Load(ctx, Key("Will it rain?", "sig-1"))
	if st == nil {
		t.Fatal("session vanished after merge")
	}
	if !st.HasUnlockedReward {
		t.Error("reward flag lost on merge")
	}
	if st.DeepAnalysis != "A long narrative." {
		t.Errorf("narrative not stored: %q", st.DeepAnalysis)
	}
}

func TestCache_MissingKey(t *testing.T) {
	c, _ := testCache(t)
	if st := c.Load(context.Background(), "absent::sig"); st != nil {
		t.Errorf("expected nil for absent key, got %+v", st)
	}
}

func TestCache_ExpiredEntryRemovedOnLoad(t *testing.T) {
	c, store := testCache(t)
	ctx := context.Background()

	c.StoreDeepAnalysis(ctx, "old question", "sig-old", "stale text")

	// Shift the clock 8 days forward; the entry is now past the 7-day TTL.
	c.now = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }

	if st := c.Load(ctx, Key("old question", "sig-old")); st != nil {
		t.Fatalf("expected expired session to be nil, got %+v", st)
	}

	// The prune must also have been written back.
	raw, _ := store.Read(ctx, "tarot_reading_sessions")
	var states []State
	if err := json.Unmarshal(raw, &states); err != nil {
		t.Fatalf("persisted collection unreadable: %v", err)
	}
	if len(states) != 0 {
		t.Errorf("expected empty persisted collection, got %d entries", len(states))
	}
}

func TestCache_PurgeStale(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	c.StoreDeepAnalysis(ctx, "q1", "sig-1", "one")
	c.StoreDeepAnalysis(ctx, "q2", "sig-2", "two")

	c.now = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }
	if removed := c.PurgeStale(ctx); removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	if removed := c.PurgeStale(ctx); removed != 0 {
		t.Errorf("expected idempotent purge, got %d", removed)
	}
}

func TestCache_CorruptedStorage(t *testing.T) {
	c, store := testCache(t)
	ctx := context.Background()

	_ = store.Write(ctx, "tarot_reading_sessions", []byte("{not json"))

	if st := c.Load(ctx, "any::key"); st != nil {
		t.Errorf("expected nil on corrupted storage, got %+v", st)
	}

	// Writes still work and replace the corrupted payload.
	c.MarkRewardUnlocked(ctx, "q", "sig")
	if st := c.Load(ctx, Key("q", "sig")); st == nil || !st.HasUnlockedReward {
		t.Error("cache did not recover from corrupted storage")
	}
}

type failingStorage struct{}

func (failingStorage) Read(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage disabled")
}

func (failingStorage) Write(context.Context, string, []byte) error {
	return errors.New("storage disabled")
}

func TestCache_UnavailableStorage(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewCache(failingStorage{}, logger, DefaultTTL)
	ctx := context.Background()

	// Nothing here may panic or propagate an error.
	if st := c.Load(ctx, "k"); st != nil {
		t.Errorf("expected nil, got %+v", st)
	}
	c.MarkRewardUnlocked(ctx, "q", "sig")
	c.StoreDeepAnalysis(ctx, "q", "sig", "text")
	if removed := c.PurgeStale(ctx); removed != 0 {
		t.Errorf("expected 0 removed, got %d", removed)
	}
}

func TestCache_Clear(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	c.StoreDeepAnalysis(ctx, "q", "sig", "text")
	c.Clear(ctx)

	if st := c.Load(ctx, Key("q", "sig")); st != nil {
		t.Errorf("expected empty cache after Clear, got %+v", st)
	}
}
