// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
	"github.com/MKhiriev/go-bookmark-sync/internal/store"
)

// errorStatuses is checked in order: a queued failure also matches the
// transport kind it was caused by.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrSyncInProgress, http.StatusConflict},
	{service.ErrQueuedForLater, http.StatusAccepted},
	{service.ErrAuthentication, http.StatusBadGateway},
	{service.ErrValidation, http.StatusUnprocessableEntity},
	{service.ErrConflict, http.StatusConflict},
	{service.ErrTransientTransport, http.StatusServiceUnavailable},
	{service.ErrEmptyRevision, http.StatusBadRequest},
	{adapter.ErrInvalidLocation, http.StatusBadRequest},
	{adapter.ErrNotFound, http.StatusNotFound},
	{service.ErrMerge, http.StatusInternalServerError},
	{service.ErrSyncFailed, http.StatusInternalServerError},

	{store.ErrRetryable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
