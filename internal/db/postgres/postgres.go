package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/hindify/internal/db"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS translation_cache (
    id          BIGSERIAL PRIMARY KEY,
    source_lang TEXT NOT NULL,
    target_lang TEXT NOT NULL,
    text_hash   TEXT NOT NULL,
    provider    TEXT NOT NULL,
    source_text TEXT NOT NULL,
    translation TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (source_lang, target_lang, text_hash, provider)
);
CREATE INDEX IF NOT EXISTS idx_translation_cache_created_at ON translation_cache (created_at);
`

// Repository implements db.Repository using PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

// New connects, pings and applies the schema. Cache traffic is one short
// lookup and at most one upsert per transform, so the pool stays small.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}
	config.MaxConns = 4
	config.MinConns = 0
	config.MaxConnIdleTime = time.Minute
	config.HealthCheckPeriod = time.Minute
	if _, ok := config.ConnConfig.RuntimeParams["application_name"]; !ok {
		config.ConnConfig.RuntimeParams["application_name"] = "hindify"
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// PoolStats exposes pgxpool statistics for health reporting.
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

func (r *Repository) GetCachedTranslation(ctx context.Context, arg db.GetCachedTranslationParams) (db.CachedTranslation, error) {
	var c db.CachedTranslation
	err := r.pool.QueryRow(ctx, `
		SELECT id, source_lang, target_lang, text_hash, provider, source_text, translation, created_at
		FROM translation_cache
		WHERE source_lang = $1 AND target_lang = $2 AND text_hash = $3 AND provider = $4
	`, arg.SourceLang, arg.TargetLang, arg.TextHash, arg.Provider).Scan(
		&c.ID, &c.SourceLang, &c.TargetLang, &c.TextHash, &c.Provider, &c.SourceText, &c.Translation, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.CachedTranslation{}, db.ErrNoRows
	}
	if err != nil {
		return db.CachedTranslation{}, err
	}
	return c, nil
}

func (r *Repository) CacheTranslation(ctx context.Context, arg db.CacheTranslationParams) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO translation_cache (source_lang, target_lang, text_hash, provider, source_text, translation)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (source_lang, target_lang, text_hash, provider)
		DO UPDATE SET translation = EXCLUDED.translation, created_at = now()
	`, arg.SourceLang, arg.TargetLang, arg.TextHash, arg.Provider, arg.SourceText, arg.Translation)
	return err
}

func (r *Repository) DeleteCachedTranslationsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM translation_cache WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
