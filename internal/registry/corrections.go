package registry

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// correctionCacheTTL is how long a loaded correction snapshot stays fresh.
const correctionCacheTTL = 10 * time.Minute

// Per-correction score deltas and their caps. A type users frequently
// correct FROM is penalized; a type they correct TO is boosted.
const (
	correctionStep = 0.03
	correctionCap  = 0.10
)

// CorrectionStat is one aggregated correction pattern from the store.
type CorrectionStat struct {
	DetectedType  string
	CorrectedType string
	Count         int
}

// CorrectionStore persists user detection corrections and serves
// aggregated stats over a recent window.
type CorrectionStore interface {
	// Record stores one user correction of a detection outcome.
	Record(ctx context.Context, detectedType, correctedType string) error
	// Stats returns recurring correction patterns from recent history.
	Stats(ctx context.Context) ([]CorrectionStat, error)
}

// CorrectionSnapshot is an immutable view of correction patterns,
// {detected type: {corrected type: count}}, used to adjust detection
// scores without holding any lock.
type CorrectionSnapshot struct {
	patterns map[string]map[string]int
	// Total times each type appeared as a correction target.
	boostFor map[string]int
}

// Adjust applies the correction-learned delta to a detection confidence
// and clamps the result to [0, 1].
func (s *CorrectionSnapshot) Adjust(typeID string, confidence float64) float64 {
	if s == nil || len(s.patterns) == 0 {
		return confidence
	}
	adj := 0.0
	if corrections, ok := s.patterns[typeID]; ok {
		total := 0
		for _, cnt := range corrections {
			total += cnt
		}
		adj -= min(float64(total)*correctionStep, correctionCap)
	}
	if boost, ok := s.boostFor[typeID]; ok {
		adj += min(float64(boost)*correctionStep, correctionCap)
	}
	return max(0, min(1, confidence+adj))
}

// CorrectionCache loads correction stats from a store and caches them as
// an atomic snapshot with a staleness TTL. Safe for concurrent use.
type CorrectionCache struct {
	store CorrectionStore
	ttl   time.Duration

	mu       sync.RWMutex
	snapshot *CorrectionSnapshot
	loadedAt time.Time
}

// NewCorrectionCache wraps a store with snapshot caching. A nil store
// yields a cache whose snapshots never adjust anything.
func NewCorrectionCache(store CorrectionStore) *CorrectionCache {
	return &CorrectionCache{store: store, ttl: correctionCacheTTL}
}

// Snapshot returns the current correction snapshot, refreshing from the
// store first when the cached one is stale. A failed refresh keeps the
// previous snapshot; detection proceeds unadjusted on a fresh install.
func (c *CorrectionCache) Snapshot(ctx context.Context) *CorrectionSnapshot {
	c.mu.RLock()
	snap, loadedAt := c.snapshot, c.loadedAt
	c.mu.RUnlock()
	if snap != nil && time.Since(loadedAt) <= c.ttl {
		return snap
	}
	return c.Refresh(ctx)
}

// Refresh reloads correction stats from the store unconditionally.
func (c *CorrectionCache) Refresh(ctx context.Context) *CorrectionSnapshot {
	fresh := &CorrectionSnapshot{
		patterns: make(map[string]map[string]int),
		boostFor: make(map[string]int),
	}
	if c.store != nil {
		stats, err := c.store.Stats(ctx)
		if err != nil {
			slog.Debug("Correction stats unavailable", "error", err)
			c.mu.RLock()
			prev := c.snapshot
			c.mu.RUnlock()
			if prev != nil {
				return prev
			}
		}
		for _, st := range stats {
			byCorrected := fresh.patterns[st.DetectedType]
			if byCorrected == nil {
				byCorrected = make(map[string]int)
				fresh.patterns[st.DetectedType] = byCorrected
			}
			byCorrected[st.CorrectedType] = st.Count
			fresh.boostFor[st.CorrectedType] += st.Count
		}
	}

	c.mu.Lock()
	c.snapshot = fresh
	c.loadedAt = time.Now()
	c.mu.Unlock()

	if n := len(fresh.boostFor); n > 0 {
		patterns := 0
		for _, byCorrected := range fresh.patterns {
			patterns += len(byCorrected)
		}
		slog.Info("Correction cache loaded", "patterns", patterns)
	}
	return fresh
}
