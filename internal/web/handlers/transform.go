package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jusunglee/hindify/internal/metrics"
	"github.com/jusunglee/hindify/internal/romanization"
	"github.com/jusunglee/hindify/internal/transform"
)

const emptyTextMessage = "Please enter some text."

// Transformer is the pipeline surface the handlers need.
type Transformer interface {
	Transform(ctx context.Context, text string) transform.Result
	Transliterate(text string) string
	RomanizeResult(text string) romanization.Result
}

type TransformHandler struct {
	transformer Transformer
	log         *slog.Logger
}

func NewTransformHandler(transformer Transformer, log *slog.Logger) *TransformHandler {
	return &TransformHandler{transformer: transformer, log: log}
}

type textRequest struct {
	Text string `json:"text"`
}

type textResponse struct {
	Result string `json:"result"`
}

type romanizeResponse struct {
	Result       string `json:"result"`
	FallbackUsed bool   `json:"fallback_used"`
}

func (h *TransformHandler) Transform(w http.ResponseWriter, r *http.Request) {
	text, ok := h.decodeText(w, r)
	if !ok {
		return
	}
	metrics.TransformsTotal.WithLabelValues("web").Inc()
	writeJSON(w, http.StatusOK, h.transformer.Transform(r.Context(), text))
}

func (h *TransformHandler) Transliterate(w http.ResponseWriter, r *http.Request) {
	text, ok := h.decodeText(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Result: h.transformer.Transliterate(text)})
}

func (h *TransformHandler) Romanize(w http.ResponseWriter, r *http.Request) {
	text, ok := h.decodeText(w, r)
	if !ok {
		return
	}
	res := h.transformer.RomanizeResult(text)
	writeJSON(w, http.StatusOK, romanizeResponse{Result: res.Text, FallbackUsed: res.FallbackUsed})
}

func (h *TransformHandler) decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return "", false
		}
		h.log.DebugContext(r.Context(), "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return "", false
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, emptyTextMessage)
		return "", false
	}
	return req.Text, true
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
