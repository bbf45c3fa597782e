// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the results of one-shot commands for a terminal.
package tui

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// TUI prints rendered views to a writer, usually stdout.
type TUI struct {
	out    io.Writer
	logger *logger.Logger
}

func New(out io.Writer, logger *logger.Logger) *TUI {
	return &TUI{out: out, logger: logger}
}

func (t *TUI) print(view string) {
	if _, err := fmt.Fprintln(t.out, view); err != nil {
		t.logger.Err(err).Str("func", "*TUI.print").Msg("failed to write view")
	}
}

func (t *TUI) BuildInfo(info models.AppBuildInfo) { t.print(RenderBuildInfo(info)) }

func (t *TUI) Outcome(outcome models.SyncOutcome) { t.print(RenderOutcome(outcome)) }

func (t *TUI) Status(status models.SyncStatus) { t.print(RenderStatus(status)) }

func (t *TUI) Queue(ops []models.PendingOperation) { t.print(RenderQueue(models.SummarizeQueue(ops))) }

func (t *TUI) Drain(result models.DrainResponse) { t.print(RenderDrain(result)) }

func (t *TUI) Progress(ev models.ProgressEvent) { t.print(RenderProgress(ev)) }

func (t *TUI) History(history models.SyncHistory) { t.print(RenderHistory(history)) }

func (t *TUI) Revisions(revisions []models.RemoteRevision) { t.print(RenderRevisions(revisions)) }

func (t *TUI) Backup(path string, backup models.Backup) { t.print(RenderBackup(path, backup)) }

func (t *TUI) Restore(result models.RestoreResponse) { t.print(RenderRestore(result)) }

// Token prints a bare control API token so it can be captured by scripts.
func (t *TUI) Token(token models.ControlToken) { t.print(token.String()) }
