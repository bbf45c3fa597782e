// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// RenderOutcome renders the result of one sync cycle.
func RenderOutcome(outcome models.SyncOutcome) string {
	return renderPage("Sync outcome", outcomeFields(outcome))
}

func outcomeFields(outcome models.SyncOutcome) []field {
	fields := []field{{label: "State", value: renderState(outcome)}}

	if outcome.Action != "" {
		fields = append(fields, field{label: "Action", value: string(outcome.Action)})
	}
	if outcome.State == models.SyncStateSuccess {
		fields = append(fields, field{label: "Uploaded", value: formatCounts(outcome.TotalCount, outcome.FolderCount)})
	}
	if outcome.Replayed > 0 {
		fields = append(fields, field{label: "Replayed", value: fmt.Sprintf("%d queued operation(s)", outcome.Replayed)})
	}
	if outcome.Error != "" {
		fields = append(fields, field{label: "Error", value: errorStyle.Render(humanizeError(outcome.Error))})
	}
	if !outcome.FinishedAt.IsZero() {
		fields = append(fields,
			field{label: "Finished", value: formatTime(outcome.FinishedAt)},
			field{label: "Duration", value: outcome.FinishedAt.Sub(outcome.StartedAt).Round(time.Millisecond).String()},
		)
	}

	return fields
}

func renderState(outcome models.SyncOutcome) string {
	switch {
	case outcome.Queued:
		return warnStyle.Render("queued for later")
	case outcome.State == models.SyncStateSuccess:
		return successStyle.Render(string(outcome.State))
	case outcome.State == models.SyncStateError:
		return errorStyle.Render(string(outcome.State))
	default:
		return string(outcome.State)
	}
}
