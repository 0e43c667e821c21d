// Package session persists per-reading unlock and narrative state,
// keyed by normalized question plus reading signature, with a fixed TTL.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/ports"
)

// storageKey is the single well-known key the whole collection lives
// under. Every write re-reads, prunes and rewrites the full list; the
// cache is single-user local state, so no finer-grained atomicity is
// needed.
const storageKey = "tarot_reading_sessions"

// DefaultTTL is how long a session survives without updates.
const DefaultTTL = 7 * 24 * time.Hour

// State is one persisted session record.
type State struct {
	Key               string    `json:"key"`
	Question          string    `json:"question"`
	Signature         string    `json:"signature"`
	HasUnlockedReward bool      `json:"hasUnlockedReward"`
	DeepAnalysis      string    `json:"deepAnalysis,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Key builds the cache key for a question and reading signature.
func Key(question, signature string) string {
	return NormalizeQuestion(question) + "::" + signature
}

// NormalizeQuestion lower-cases and collapses whitespace so that
// trivially different phrasings of the same question share a slot.
func NormalizeQuestion(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

// Cache is the signature-keyed session store.
type Cache struct {
	storage ports.Storage
	logger  *slog.Logger
	ttl     time.Duration
	now     func() time.Time
}

func NewCache(storage ports.Storage, logger *slog.Logger, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		storage: storage,
		logger:  logger,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Load returns the session for key, or nil if absent or expired.
// Expired entries found along the way are pruned and the pruned
// collection written back.
func (c *Cache) Load(ctx context.Context, key string) *State {
	states := c.loadAll(ctx)
	fresh := c.prune(states)
	if len(fresh) != len(states) {
		c.saveAll(ctx, fresh)
	}
	for i := range fresh {
		if fresh[i].Key == key {
			st := fresh[i]
			return &st
		}
	}
	return nil
}

// MarkRewardUnlocked records that the reward gate for this reading has
// been passed, creating the session if needed.
func (c *Cache) MarkRewardUnlocked(ctx context.Context, question, signature string) {
	c.upsert(ctx, question, signature, func(st *State) {
		st.HasUnlockedReward = true
	})
}

// StoreDeepAnalysis caches the formatted narrative for this reading,
// creating the session if needed.
func (c *Cache) StoreDeepAnalysis(ctx context.Context, question, signature, text string) {
	c.upsert(ctx, question, signature, func(st *State) {
		st.DeepAnalysis = text
	})
}

// PurgeStale removes every entry older than the TTL and reports how
// many were dropped.
func (c *Cache) PurgeStale(ctx context.Context) int {
	states := c.loadAll(ctx)
	fresh := c.prune(states)
	removed := len(states) - len(fresh)
	if removed > 0 {
		c.saveAll(ctx, fresh)
	}
	return removed
}

// Clear drops the whole collection.
func (c *Cache) Clear(ctx context.Context) {
	c.saveAll(ctx, nil)
}

func (c *Cache) upsert(ctx context.Context, question, signature string, mutate func(*State)) {
	key := Key(question, signature)
	states := c.prune(c.loadAll(ctx))

	idx := -1
	for i := range states {
		if states[i].Key == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		states = append(states, State{
			Key:       key,
			Question:  question,
			Signature: signature,
		})
		idx = len(states) - 1
	}

	mutate(&states[idx])
	states[idx].UpdatedAt = c.now()
	c.saveAll(ctx, states)
}

func (c *Cache) prune(states []State) []State {
	cutoff := c.now().Add(-c.ttl)
	fresh := make([]State, 0, len(states))
	for _, st := range states {
		if st.UpdatedAt.After(cutoff) {
			fresh = append(fresh, st)
		}
	}
	return fresh
}

// loadAll reads the collection. Storage failures and corrupted payloads
// degrade to an empty collection; the reading experience must keep
// working without persistence.
func (c *Cache) loadAll(ctx context.Context) []State {
	raw, err := c.storage.Read(ctx, storageKey)
	if err != nil {
		c.logger.WarnContext(ctx, "session storage read failed", "error", err)
		return nil
	}
	if len(raw) == 0 {
		return nil
	}
	var states []State
	if err := json.Unmarshal(raw, &states); err != nil {
		c.logger.WarnContext(ctx, "session storage corrupted, starting empty", "error", err)
		return nil
	}
	return states
}

func (c *Cache) saveAll(ctx context.Context, states []State) {
	if states == nil {
		states = []State{}
	}
	raw, err := json.Marshal(states)
	if err != nil {
		c.logger.ErrorContext(ctx, "marshal sessions", "error", err)
		return
	}
	if err := c.storage.Write(ctx, storageKey, raw); err != nil {
		c.logger.WarnContext(ctx, "session storage write failed", "error", err)
	}
}
