// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// RenderHistory renders recorded outcomes and the error log, newest first.
func RenderHistory(history models.SyncHistory) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Sync history (%d)", len(history.Outcomes))))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	if len(history.Outcomes) == 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("no recorded outcomes"))
	}
	for _, o := range history.Outcomes {
		action := valueOrNA(string(o.Action))
		detail := formatCounts(o.TotalCount, o.FolderCount)
		if o.State != models.SyncStateSuccess {
			detail = humanizeError(o.Error)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "%-19s %s%-12s %s", formatTime(o.FinishedAt), padState(renderState(o)), action, detail)
	}

	if len(history.Errors) > 0 {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("Errors (%d)", len(history.Errors))))
		b.WriteString("\n")
		b.WriteString(uiDivider)
		for _, e := range history.Errors {
			where := e.Operation
			if e.Stage != "" {
				where += "/" + string(e.Stage)
			}
			b.WriteString("\n")
			fmt.Fprintf(&b, "%-19s %-24s %s", formatTime(e.At), where, errorStyle.Render(humanizeError(e.Message)))
		}
	}

	return boxStyle.Render(b.String())
}

// padState pads a styled state to a fixed visible width.
func padState(state string) string {
	const width = 16
	return state + strings.Repeat(" ", max(1, width-lipgloss.Width(state)))
}

// RenderRevisions renders the remote revisions a rollback can restore.
func RenderRevisions(revisions []models.RemoteRevision) string {
	if len(revisions) == 0 {
		return renderPage("Remote revisions", []field{{label: "Available", value: "0"}})
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Remote revisions (%d)", len(revisions))))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-19s %s", "COMMITTED", "REVISION")))
	for _, r := range revisions {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%-19s %s", formatTime(r.CommittedAt), r.ID)
	}
	return boxStyle.Render(b.String())
}

// RenderBackup renders where a backup was written and what it holds.
func RenderBackup(path string, backup models.Backup) string {
	meta := backup.Envelope.Metadata
	return renderPage("Backup written", []field{
		{label: "File", value: path},
		{label: "Created", value: formatTime(backup.CreatedAt)},
		{label: "Content", value: formatCounts(meta.TotalCount, meta.FolderCount)},
		{label: "Error log", value: fmt.Sprintf("%d entries", len(backup.ErrorLogs))},
	})
}

// RenderRestore renders the result of a backup restore.
func RenderRestore(result models.RestoreResponse) string {
	return renderPage("Backup restored", []field{{label: "Added", value: fmt.Sprintf("%d node(s)", result.Added)}})
}
