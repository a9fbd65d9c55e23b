// Package gtranslate calls the public Google Translate web endpoint.
package gtranslate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jusunglee/hindify/internal/metrics"
)

const DefaultBaseURL = "https://translate.googleapis.com"

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrEmptyResponse    = errors.New("empty translation response")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for baseURL; an empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) Name() string {
	return "gtranslate"
}

func (c *Client) Translate(ctx context.Context, text, source, target string) (out string, err error) {
	start := time.Now()
	defer func() {
		metrics.TranslationDuration.WithLabelValues(c.Name()).Observe(time.Since(start).Seconds())
		result := "success"
		if err != nil {
			result = "failed"
		}
		metrics.TranslationsTotal.WithLabelValues(c.Name(), result).Inc()
	}()

	form := url.Values{
		"client": {"gtx"},
		"sl":     {source},
		"tl":     {target},
		"dt":     {"t"},
		"q":      {text},
	}

	// POST keeps long inputs out of the URL.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate_a/single", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return parseSegments(payload)
}

// parseSegments joins the translated half of each [translated, original, ...]
// segment in the first element of the response.
func parseSegments(payload []json.RawMessage) (string, error) {
	if len(payload) == 0 {
		return "", ErrEmptyResponse
	}

	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("failed to decode segments: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			b.WriteString(s)
		}
	}

	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}
