package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jusunglee/hindify/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Repository implements db.Repository using SQLite
type Repository struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and applies the schema.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	isNew := false
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		isNew = true
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}

	// Each connection to :memory: is a separate database.
	if dbPath == ":memory:" {
		sqliteDB.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	if isNew {
		slog.Info("created new SQLite database", "path", dbPath)
	}

	return &Repository{db: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) GetCachedTranslation(ctx context.Context, arg db.GetCachedTranslationParams) (db.CachedTranslation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, source_lang, target_lang, text_hash, provider, source_text, translation, created_at
		FROM translation_cache
		WHERE source_lang = ? AND target_lang = ? AND text_hash = ? AND provider = ?
	`, arg.SourceLang, arg.TargetLang, arg.TextHash, arg.Provider)

	var c db.CachedTranslation
	var createdAtStr string
	err := row.Scan(&c.ID, &c.SourceLang, &c.TargetLang, &c.TextHash, &c.Provider, &c.SourceText, &c.Translation, &createdAtStr)
	if err == sql.ErrNoRows {
		return db.CachedTranslation{}, db.ErrNoRows
	}
	if err != nil {
		return db.CachedTranslation{}, err
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return c, nil
}

func (r *Repository) CacheTranslation(ctx context.Context, arg db.CacheTranslationParams) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO translation_cache (source_lang, target_lang, text_hash, provider, source_text, translation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (source_lang, target_lang, text_hash, provider)
		DO UPDATE SET translation = excluded.translation, created_at = excluded.created_at
	`, arg.SourceLang, arg.TargetLang, arg.TextHash, arg.Provider, arg.SourceText, arg.Translation,
		time.Now().UTC().Format(time.RFC3339))
	return err
}

func (r *Repository) DeleteCachedTranslationsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM translation_cache WHERE created_at < ?
	`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
