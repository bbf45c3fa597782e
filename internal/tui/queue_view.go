// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

const maxIDWidth = 36

// RenderQueue renders pending operations in replay order.
func RenderQueue(queue models.QueueResponse) string {
	if queue.Length == 0 {
		return renderPage("Offline queue", []field{{label: "Pending", value: "0"}})
	}

	idWidth := lipgloss.Width("ID")
	for _, e := range queue.Entries {
		idWidth = max(idWidth, lipgloss.Width(fitText(e.ID, maxIDWidth)))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Offline queue (%d)", queue.Length)))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-3s %-*s %-8s %-19s %s", "#", idWidth, "ID", "KIND", "ENQUEUED", "CONTENT")))
	for i, e := range queue.Entries {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%-3d %-*s %-8s %-19s %s",
			i+1, idWidth, fitText(e.ID, maxIDWidth), e.Kind, formatTime(e.EnqueuedAt), formatCounts(e.TotalCount, e.FolderCount))
	}

	return boxStyle.Render(b.String())
}

// RenderDrain renders the result of a manual queue drain.
func RenderDrain(result models.DrainResponse) string {
	fields := []field{{label: "Replayed", value: fmt.Sprintf("%d", result.Replayed)}}
	if result.Error != "" {
		fields = append(fields, field{label: "Stopped", value: errorStyle.Render(humanizeError(result.Error))})
	}
	return renderPage("Queue drain", fields)
}
