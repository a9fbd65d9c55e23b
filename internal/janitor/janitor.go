// Package janitor prunes stale entries from the translation cache.
package janitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/hindify/internal/db"
	"github.com/jusunglee/hindify/internal/metrics"
)

const DefaultTTL = 30 * 24 * time.Hour

type Janitor struct {
	repo db.Repository
	ttl  time.Duration
	log  *slog.Logger
	now  func() time.Time
}

func New(repo db.Repository, ttl time.Duration, log *slog.Logger) *Janitor {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Janitor{repo: repo, ttl: ttl, log: log, now: time.Now}
}

// RunOnce deletes entries created before now-ttl and returns how many went.
func (j *Janitor) RunOnce(ctx context.Context) (int64, error) {
	cutoff := j.now().Add(-j.ttl)
	n, err := j.repo.DeleteCachedTranslationsBefore(ctx, cutoff)
	if err != nil {
		metrics.CachePruneErrors.Inc()
		return 0, fmt.Errorf("pruning cache before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	metrics.CachePrunedTotal.Add(float64(n))
	j.log.InfoContext(ctx, "pruned translation cache", "deleted", n, "cutoff", cutoff)
	return n, nil
}

// Run prunes immediately and then every interval until ctx is done. Failed
// passes are logged and retried on the next tick.
func (j *Janitor) Run(ctx context.Context, interval time.Duration) {
	if _, err := j.RunOnce(ctx); err != nil {
		j.log.ErrorContext(ctx, "cache prune failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, err := j.RunOnce(ctx); err != nil {
				j.log.ErrorContext(ctx, "cache prune failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// PoolStatter is implemented by repositories backed by pgxpool.
type PoolStatter interface {
	PoolStats() *pgxpool.Stat
}

// ExportPoolStats copies pool statistics into the db pool gauges every
// interval until ctx is done.
func ExportPoolStats(ctx context.Context, p PoolStatter, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s := p.PoolStats()
			metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
			metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
			metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
			metrics.DBPoolMaxConns.Set(float64(s.MaxConns()))
		case <-ctx.Done():
			return
		}
	}
}
