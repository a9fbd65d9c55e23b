package janitor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jusunglee/hindify/internal/db"
	"github.com/jusunglee/hindify/internal/db/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seed(t *testing.T, repo db.Repository, text string) {
	t.Helper()
	require.NoError(t, repo.CacheTranslation(context.Background(), db.CacheTranslationParams{
		SourceLang:  "en",
		TargetLang:  "hi",
		TextHash:    db.HashText(text),
		Provider:    "gtranslate",
		SourceText:  text,
		Translation: "नमस्ते",
	}))
}

func TestRunOnceKeepsFreshEntries(t *testing.T) {
	repo, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	seed(t, repo, "hello")

	n, err := New(repo, time.Hour, discardLogger()).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRunOnceDeletesExpiredEntries(t *testing.T) {
	repo, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	seed(t, repo, "hello")
	seed(t, repo, "the boy")

	j := New(repo, time.Hour, discardLogger())
	j.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	n, err := j.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = repo.GetCachedTranslation(context.Background(), db.GetCachedTranslationParams{
		SourceLang: "en", TargetLang: "hi", TextHash: db.HashText("hello"), Provider: "gtranslate",
	})
	assert.True(t, db.IsNoRows(err))
}

type failingRepo struct {
	db.Repository
}

func (failingRepo) DeleteCachedTranslationsBefore(context.Context, time.Time) (int64, error) {
	return 0, errors.New("disk full")
}

func TestRunOnceWrapsErrors(t *testing.T) {
	_, err := New(failingRepo{}, 0, discardLogger()).RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRunStopsOnCancel(t *testing.T) {
	repo, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		New(repo, time.Hour, discardLogger()).Run(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewDefaultsTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, New(nil, 0, discardLogger()).ttl)
}
