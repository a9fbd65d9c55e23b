package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// CachedTranslation is a previously computed translation of SourceText.
type CachedTranslation struct {
	ID          int64
	SourceLang  string
	TargetLang  string
	TextHash    string
	Provider    string
	SourceText  string
	Translation string
	CreatedAt   time.Time
}

type GetCachedTranslationParams struct {
	SourceLang string
	TargetLang string
	TextHash   string
	Provider   string
}

type CacheTranslationParams struct {
	SourceLang  string
	TargetLang  string
	TextHash    string
	Provider    string
	SourceText  string
	Translation string
}

// Repository stores translations so identical requests skip the provider.
type Repository interface {
	GetCachedTranslation(ctx context.Context, arg GetCachedTranslationParams) (CachedTranslation, error)
	CacheTranslation(ctx context.Context, arg CacheTranslationParams) error
	DeleteCachedTranslationsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Close() error
}

// HashText returns the hex SHA-256 of text, used as the cache key.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
