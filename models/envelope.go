// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SchemaVersion is the semantic version of the envelope payload shape.
const SchemaVersion = "1.0.0"

// SyncEnvelope is the unit exchanged with the remote store.
type SyncEnvelope struct {
	SchemaVersion string           `json:"schemaVersion"`
	LastModified  time.Time        `json:"lastModified"`
	DeviceID      string           `json:"deviceId"`
	Nodes         []BookmarkNode   `json:"nodes"`
	Metadata      EnvelopeMetadata `json:"metadata"`
}

// EnvelopeMetadata is derived from SyncEnvelope.Nodes and is recomputed every
// time an envelope is produced.
type EnvelopeMetadata struct {
	TotalCount    int       `json:"totalCount"`
	FolderCount   int       `json:"folderCount"`
	LastSync      time.Time `json:"lastSync"`
	SchemaVersion string    `json:"schemaVersion"`
}

// EnvelopeCounts is the persisted summary of the last written envelope.
type EnvelopeCounts struct {
	TotalCount  int `json:"totalCount"`
	FolderCount int `json:"folderCount"`
}

// CountNodes returns the number of bookmarks and folders in nodes, descending
// into nested children.
func CountNodes(nodes []BookmarkNode) (bookmarks, folders int) {
	for _, n := range nodes {
		if n.IsFolder() {
			folders++
		} else {
			bookmarks++
		}
		b, f := CountNodes(n.Children)
		bookmarks += b
		folders += f
	}
	return bookmarks, folders
}
