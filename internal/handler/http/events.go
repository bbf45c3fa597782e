// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

const (
	eventsBuffer       = 32
	eventsWriteTimeout = 5 * time.Second
)

// streamSyncEvents upgrades the request to a websocket and forwards every
// progress event as a JSON text message until either side goes away.
func (h *Handler) streamSyncEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.streamSyncEvents").Msg("websocket upgrade failed")
		return
	}
	defer conn.CloseNow()

	events, unsubscribe := h.services.SyncService.Subscribe(eventsBuffer)
	defer unsubscribe()

	// the client never sends; CloseRead handles its close frame
	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case ev, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "event stream closed")
				return
			}

			writeCtx, cancel := context.WithTimeout(ctx, eventsWriteTimeout)
			err = wsjson.Write(writeCtx, conn, ev)
			cancel()
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Err(err).Str("func", "*Handler.streamSyncEvents").Msg("failed to send progress event")
				}
				return
			}
		}
	}
}
