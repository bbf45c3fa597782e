// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BookmarkNode is one canonical entry of the synchronized hierarchy.
//
// A node with a non-empty URL is a bookmark; a node without URL is a folder.
// Timestamps are Unix milliseconds, matching what browser hosts report.
type BookmarkNode struct {
	// ID is the host-assigned identity. It is never reassigned by the sync engine.
	ID string `json:"id"`
	// Title defaults to an empty string.
	Title string `json:"title"`
	// URL is empty for folders.
	URL string `json:"url,omitempty"`
	// ParentID is empty only for top-level items.
	ParentID string `json:"parentId,omitempty"`
	// Index is the sibling position, starting at zero.
	Index int `json:"index"`
	// DateAdded is the creation instant.
	DateAdded int64 `json:"dateAdded"`
	// DateModified is the last modification instant reported by the host, if any.
	DateModified int64 `json:"dateModified,omitempty"`
	// Children is only populated by producers that nest the tree. Canonical
	// envelopes are flat and leave it empty.
	Children []BookmarkNode `json:"children,omitempty"`
}

// IsFolder reports whether the node is a folder.
func (n BookmarkNode) IsFolder() bool {
	return n.URL == ""
}

// ModifiedAt returns the effective modification time used for merge
// precedence: the later of DateModified and DateAdded.
func (n BookmarkNode) ModifiedAt() int64 {
	if n.DateModified > n.DateAdded {
		return n.DateModified
	}
	return n.DateAdded
}

// HostNode is a node exactly as the host bookmark store reports it, before
// normalization. Optional host fields are expressed as zero values or nil.
type HostNode struct {
	ID           string
	Title        string
	URL          string
	ParentID     string
	Index        *int
	DateAdded    int64
	DateModified int64
	// DefaultContainer marks host-owned containers such as the bookmarks bar.
	DefaultContainer bool
	Children         []HostNode
}

// HostChangeKind describes what happened to the host tree.
type HostChangeKind string

const (
	HostChangeCreated  HostChangeKind = "created"
	HostChangeModified HostChangeKind = "modified"
	HostChangeRemoved  HostChangeKind = "removed"
	HostChangeMoved    HostChangeKind = "moved"
)

// HostChange is a change notification from the host store. It only requests
// a sync cycle; its payload is informational.
type HostChange struct {
	Kind HostChangeKind
	Path string
}
