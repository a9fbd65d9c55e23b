package gtranslate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/translate_a/single", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "gtx", r.PostForm.Get("client"))
		assert.Equal(t, "en", r.PostForm.Get("sl"))
		assert.Equal(t, "hi", r.PostForm.Get("tl"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTranslateJoinsSegments(t *testing.T) {
	body := `[[["लड़का घर गया। ","The boy went home. ",null,null,10],["वह खुश था।","He was happy.",null,null,10]],null,"en"]`
	srv := newTestServer(t, http.StatusOK, body)

	got, err := NewClient(srv.URL).Translate(context.Background(), "The boy went home. He was happy.", "en", "hi")
	require.NoError(t, err)
	assert.Equal(t, "लड़का घर गया। वह खुश था।", got)
}

func TestTranslateUnexpectedStatus(t *testing.T) {
	srv := newTestServer(t, http.StatusTooManyRequests, `{}`)

	_, err := NewClient(srv.URL).Translate(context.Background(), "hello", "en", "hi")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestTranslateEmptyResponse(t *testing.T) {
	for _, body := range []string{`[]`, `[[],null,"en"]`, `[[[null,"hello"]],null,"en"]`} {
		srv := newTestServer(t, http.StatusOK, body)
		_, err := NewClient(srv.URL).Translate(context.Background(), "hello", "en", "hi")
		assert.ErrorIs(t, err, ErrEmptyResponse, body)
	}
}

func TestTranslateMalformedBody(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `not json`)

	_, err := NewClient(srv.URL).Translate(context.Background(), "hello", "en", "hi")
	assert.Error(t, err)
}
