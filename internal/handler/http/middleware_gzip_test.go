// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		status         int
		body           string
		wantGzipped    bool
	}{
		{name: "compressed when accepted", acceptEncoding: "gzip, deflate", status: http.StatusOK, body: `{"length":0}`, wantGzipped: true},
		{name: "plain when not accepted", status: http.StatusOK, body: `{"length":0}`},
		{name: "error statuses are compressed too", acceptEncoding: "gzip", status: http.StatusConflict, body: "sync already in progress", wantGzipped: true},
		{name: "no body on 304", acceptEncoding: "gzip", status: http.StatusNotModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					io.WriteString(w, tt.body)
				}
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/sync/queue", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, gunzip(t, rec.Body))
				return
			}
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestGZip_ImplicitStatus(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, strings.Repeat("bookmark ", 200))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Less(t, rec.Body.Len(), 1800)
	assert.Equal(t, strings.Repeat("bookmark ", 200), gunzip(t, rec.Body))
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, r.URL.Query().Get("v"))
	}))

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := strings.Repeat("x", i+1)
			req := httptest.NewRequest(http.MethodGet, "/?v="+v, nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			zr, err := gzip.NewReader(rec.Body)
			if !assert.NoError(t, err) {
				return
			}
			out, _ := io.ReadAll(zr)
			assert.Equal(t, v, string(out))
		}()
	}
	wg.Wait()
}
