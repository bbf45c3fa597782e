// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "release", version: "1.2.3"},
		{name: "pre-release with build", version: "v1.2.3-beta+build.42"},
		{name: "empty", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, appInfo := newTestHandler(t, "")
			appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			rec := httptest.NewRecorder()
			h.getVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.version, rec.Body.String())
		})
	}
}

func TestGetVersion_PassesRequestContext(t *testing.T) {
	h, _, appInfo := newTestHandler(t, "")

	type key struct{}
	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req = req.WithContext(context.WithValue(req.Context(), key{}, "marker"))

	appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(ctx context.Context) string {
		assert.Equal(t, "marker", ctx.Value(key{}))
		return "1.0.0"
	})

	h.getVersion(httptest.NewRecorder(), req)
}
