// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
)

// withETag buffers successful GET responses, tags them with the SHA-256 of
// the body and answers 304 when the client already holds that version.
// Pollers of the status and queue endpoints only download changes.
func withETag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		buf := &bufferedResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(buf, r)

		if buf.status != http.StatusOK {
			w.WriteHeader(buf.status)
			w.Write(buf.body.Bytes())
			return
		}

		etag := `"` + utils.Fingerprint(buf.body.Bytes()) + `"`
		w.Header().Set("ETag", etag)

		if r.Header.Get("If-None-Match") == etag {
			w.Header().Del("Content-Encoding")
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(buf.body.Bytes())
	})
}

// bufferedResponseWriter holds the status and body back; headers go straight
// to the wrapped writer.
type bufferedResponseWriter struct {
	http.ResponseWriter

	status int
	body   bytes.Buffer
}

func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}
