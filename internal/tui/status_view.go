// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// RenderStatus renders the engine state with its last recorded outcome.
func RenderStatus(status models.SyncStatus) string {
	fields := []field{
		{label: "Engine", value: string(status.State)},
		{label: "Last sync", value: formatTime(status.LastSyncAt)},
		{label: "Pending", value: strconv.Itoa(status.Pending)},
	}
	for _, f := range outcomeFields(status.LastOutcome) {
		f.label = "Last " + lowerFirst(f.label)
		fields = append(fields, f)
	}

	return renderPage("Sync status", fields)
}

func lowerFirst(s string) string {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return s
	}
	return string(s[0]+'a'-'A') + s[1:]
}
