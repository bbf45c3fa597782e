// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// RenderProgress renders one progress event as a single line.
func RenderProgress(ev models.ProgressEvent) string {
	line := fmt.Sprintf("[%3d%%] %-9s", ev.Percent, ev.Type)
	if ev.Stage != "" {
		line += " " + string(ev.Stage)
	}
	if ev.Message != "" {
		line += ": " + ev.Message
	}

	switch ev.Type {
	case models.ProgressError:
		return errorStyle.Render(line)
	case models.ProgressRetrying:
		return warnStyle.Render(line)
	case models.ProgressSuccess:
		return successStyle.Render(line)
	default:
		return line
	}
}
