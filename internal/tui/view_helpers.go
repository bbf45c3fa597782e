// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

// field is one "label: value" row of a page.
type field struct {
	label string
	value string
}

func renderPage(title string, fields []field) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	width := 0
	for _, f := range fields {
		width = max(width, lipgloss.Width(f.label))
	}
	for _, f := range fields {
		label := f.label + ":" + strings.Repeat(" ", width-lipgloss.Width(f.label)+1)
		b.WriteString(labelStyle.Render(label))
		b.WriteString(f.value)
		b.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.DateTime)
}

func formatCounts(total, folders int) string {
	return fmt.Sprintf("%d bookmarks, %d folders", total, folders)
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
