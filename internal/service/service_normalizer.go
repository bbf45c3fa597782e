// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

type normalizeFrame struct {
	node     models.HostNode
	parentID string
	position int
	topLevel bool
}

// Normalize converts the host forest into the canonical flat node sequence.
//
// The walk is depth-first and preserves sibling order. Top-level folders are
// treated as synthetic roots: they are skipped, but their children are kept.
// Default containers without URL and children are dropped. Missing indices
// default to the discovery position and missing creation times to now.
//
// A bookmark that carries children is emitted as a bookmark and its children
// follow as separate nodes still naming it as parent, so the malformed link
// is reported by validation instead of being lost here.
//
// The host tree is never modified.
func Normalize(forest []models.HostNode, now time.Time) []models.BookmarkNode {
	nowMillis := now.UnixMilli()
	out := make([]models.BookmarkNode, 0, len(forest))
	stack := make([]normalizeFrame, 0, len(forest))

	push := func(children []models.HostNode, parentID string, topLevel bool) {
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, normalizeFrame{
				node:     children[i],
				parentID: parentID,
				position: i,
				topLevel: topLevel,
			})
		}
	}
	push(forest, "", true)

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := frame.node

		if frame.topLevel && n.URL == "" {
			push(n.Children, n.ID, false)
			continue
		}
		if n.DefaultContainer && n.URL == "" && len(n.Children) == 0 {
			continue
		}

		out = append(out, toBookmarkNode(n, frame, nowMillis))
		push(n.Children, n.ID, false)
	}

	return out
}

func toBookmarkNode(n models.HostNode, frame normalizeFrame, nowMillis int64) models.BookmarkNode {
	node := models.BookmarkNode{
		ID:           n.ID,
		Title:        n.Title,
		URL:          n.URL,
		ParentID:     n.ParentID,
		Index:        frame.position,
		DateAdded:    n.DateAdded,
		DateModified: n.DateModified,
	}
	if node.ParentID == "" {
		node.ParentID = frame.parentID
	}
	if n.Index != nil && *n.Index >= 0 {
		node.Index = *n.Index
	}
	if node.DateAdded <= 0 {
		node.DateAdded = nowMillis
	}
	if node.DateModified < 0 {
		node.DateModified = 0
	}
	return node
}
