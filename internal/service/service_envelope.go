// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/utils"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// NewEnvelope wraps nodes into an envelope produced by deviceID at now.
// Nested children are flattened and the metadata is computed from the
// result.
func NewEnvelope(nodes []models.BookmarkNode, deviceID string, now time.Time) models.SyncEnvelope {
	env := models.SyncEnvelope{
		SchemaVersion: models.SchemaVersion,
		LastModified:  now.UTC(),
		DeviceID:      deviceID,
		Nodes:         FlattenNodes(nodes),
	}
	RecomputeMetadata(&env)
	return env
}

// RecomputeMetadata derives the counts from env.Nodes and echoes the schema
// version. LastSync is left untouched.
func RecomputeMetadata(env *models.SyncEnvelope) {
	bookmarks, folders := models.CountNodes(env.Nodes)
	env.Metadata.TotalCount = bookmarks
	env.Metadata.FolderCount = folders
	env.Metadata.SchemaVersion = env.SchemaVersion
}

// FlattenNodes returns nodes in depth-first order with every nested child
// lifted to the top level. A child without ParentID gets the id of the node
// it was nested in.
func FlattenNodes(nodes []models.BookmarkNode) []models.BookmarkNode {
	out := make([]models.BookmarkNode, 0, len(nodes))

	type frame struct {
		node     models.BookmarkNode
		parentID string
	}
	stack := make([]frame, 0, len(nodes))
	push := func(list []models.BookmarkNode, parentID string) {
		for i := len(list) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: list[i], parentID: parentID})
		}
	}
	push(nodes, "")

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := f.node
		children := n.Children
		n.Children = nil
		if n.ParentID == "" {
			n.ParentID = f.parentID
		}
		out = append(out, n)
		push(children, n.ID)
	}

	return out
}

func envelopeCounts(env models.SyncEnvelope) models.EnvelopeCounts {
	return models.EnvelopeCounts{
		TotalCount:  env.Metadata.TotalCount,
		FolderCount: env.Metadata.FolderCount,
	}
}

// NodesFingerprint identifies the content of a node set. Envelopes built from
// the same tree share it even when their provenance fields differ.
func NodesFingerprint(nodes []models.BookmarkNode) (string, error) {
	raw, err := json.Marshal(nodes)
	if err != nil {
		return "", fmt.Errorf("encode nodes: %w", err)
	}
	return utils.Fingerprint(raw), nil
}
