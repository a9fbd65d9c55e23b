package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jusunglee/hindify/internal/ratelimit"
	"github.com/jusunglee/hindify/internal/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTranslator struct {
	out string
	err error
}

func (s stubTranslator) Translate(context.Context, string, string, string) (string, error) {
	return s.out, s.err
}

func newTestServer(t *testing.T, tr stubTranslator, limit int) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(transform.NewDefault(tr, log), log, nil, ratelimit.New(limit, time.Minute))
	srv := httptest.NewServer(router.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestTransformEndpoint(t *testing.T) {
	srv := newTestServer(t, stubTranslator{out: "नमस्ते"}, 100)

	resp, body := post(t, srv, "/api/v1/transform", `{"text":"the boy"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "द बॉय", body["transliteration"])
	assert.Equal(t, "नमस्ते", body["translation"])
	assert.Equal(t, "Namaste", body["romanization"])
}

func TestTransformEndpointTranslationFailure(t *testing.T) {
	srv := newTestServer(t, stubTranslator{err: errors.New("down")}, 100)

	resp, body := post(t, srv, "/api/v1/transform", `{"text":"the boy"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, transform.TranslationFailed, body["translation"])
}

func TestTransformEndpointRejectsEmptyText(t *testing.T) {
	srv := newTestServer(t, stubTranslator{}, 100)

	for _, in := range []string{`{"text":""}`, `{"text":"   \n"}`, `{}`} {
		resp, body := post(t, srv, "/api/v1/transform", in)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, in)
		assert.Equal(t, "Please enter some text.", body["error"], in)
	}

	resp, body := post(t, srv, "/api/v1/transform", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid request body", body["error"])
}

func TestTransformEndpointRejectsLargeBody(t *testing.T) {
	srv := newTestServer(t, stubTranslator{}, 100)

	big := `{"text":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	resp, body := post(t, srv, "/api/v1/transform", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, "request body too large", body["error"])
}

func TestTransliterateAndRomanizeEndpoints(t *testing.T) {
	srv := newTestServer(t, stubTranslator{}, 100)

	resp, body := post(t, srv, "/api/v1/transliterate", `{"text":"think"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "थिंक", body["result"])

	resp, body = post(t, srv, "/api/v1/romanize", `{"text":"नमस्ते"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Namaste", body["result"])
	assert.Equal(t, false, body["fallback_used"])
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, stubTranslator{}, 2)

	for range 2 {
		resp, _ := post(t, srv, "/api/v1/transliterate", `{"text":"the"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp, body := post(t, srv, "/api/v1/transliterate", `{"text":"the"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "rate limit exceeded", body["error"])
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, stubTranslator{}, 1)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
