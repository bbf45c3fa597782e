// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

func serveWithTraceID(t *testing.T, h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var captured *http.Request
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NotNil(t, captured, "next handler must be called")
	return rec, captured
}

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	rec, _ := serveWithTraceID(t, &Handler{logger: logger.Nop()}, "popup-1234")

	assert.Equal(t, "popup-1234", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	first, _ := serveWithTraceID(t, h, "")
	second, _ := serveWithTraceID(t, h, "")

	id := first.Header().Get(traceIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, second.Header().Get(traceIDHeader))
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	_, req := serveWithTraceID(t, h, "trace-abc")
	logger.FromRequest(req).Info().Msg("inside handler")

	assert.Contains(t, buf.String(), `"trace_id":"trace-abc"`)
}
