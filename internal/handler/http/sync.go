// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-bookmark-sync/internal/app"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status, err := h.services.SyncService.Status(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSyncStatus").Msg("error getting sync status")
		http.Error(w, app.MsgSyncStatusUnavailable, statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

// triggerSync runs one cycle and answers with its outcome. A failed cycle
// still returns the outcome, with a status derived from the error kind.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	outcome, err := h.services.SyncService.TriggerSync(r.Context())
	switch {
	case err == nil:
		utils.WriteJSON(w, outcome, http.StatusOK)
	case errors.Is(err, service.ErrSyncInProgress):
		log.Debug().Str("func", "*Handler.triggerSync").Msg("sync already running")
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Err(err).Str("func", "*Handler.triggerSync").Bool("queued", outcome.Queued).Msg("sync failed")
		utils.WriteJSON(w, outcome, statusFromError(err))
	}
}

func (h *Handler) getQueue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ops, err := h.services.SyncService.PendingOperations(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getQueue").Msg("error listing pending operations")
		http.Error(w, app.MsgQueueUnavailable, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SummarizeQueue(ops), http.StatusOK)
}

func (h *Handler) drainQueue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	replayed, err := h.services.SyncService.DrainQueue(r.Context())
	switch {
	case err == nil:
		utils.WriteJSON(w, models.DrainResponse{Replayed: replayed}, http.StatusOK)
	case errors.Is(err, service.ErrSyncInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Err(err).Str("func", "*Handler.drainQueue").Int("replayed", replayed).Msg("queue drain stopped")
		utils.WriteJSON(w, models.DrainResponse{Replayed: replayed, Error: err.Error()}, statusFromError(err))
	}
}

// getHistory answers with recorded outcomes and errors. The optional limit
// query parameter caps both lists.
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, app.MsgInvalidLimit, http.StatusBadRequest)
			return
		}
		limit = n
	}

	history, err := h.services.SyncService.History(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getHistory").Msg("error getting sync history")
		http.Error(w, app.MsgHistoryUnavailable, statusFromError(err))
		return
	}

	utils.WriteJSON(w, history, http.StatusOK)
}

func (h *Handler) getRevisions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	revisions, err := h.services.SyncService.Revisions(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRevisions").Msg("error listing remote revisions")
		http.Error(w, app.MsgRevisionsUnavailable, statusFromError(err))
		return
	}

	utils.WriteJSON(w, revisions, http.StatusOK)
}

// rollback writes the requested revision back as the remote document and
// answers with the outcome, like triggerSync.
func (h *Handler) rollback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RollbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.rollback").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	outcome, err := h.services.SyncService.Rollback(r.Context(), req.Revision)
	switch {
	case err == nil:
		utils.WriteJSON(w, outcome, http.StatusOK)
	case errors.Is(err, service.ErrSyncInProgress), errors.Is(err, service.ErrEmptyRevision):
		http.Error(w, err.Error(), statusFromError(err))
	default:
		log.Err(err).Str("func", "*Handler.rollback").Str("revision", req.Revision).Msg("rollback failed")
		utils.WriteJSON(w, outcome, statusFromError(err))
	}
}
