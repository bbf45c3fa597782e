// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-bookmark-sync/models"

// RenderBuildInfo renders the build metadata printed at startup.
func RenderBuildInfo(info models.AppBuildInfo) string {
	return renderPage("go-bookmark-sync", []field{
		{label: "Version", value: valueOrNA(info.BuildVersion())},
		{label: "Date", value: valueOrNA(info.BuildDate())},
		{label: "Commit", value: valueOrNA(info.BuildCommit())},
	})
}
