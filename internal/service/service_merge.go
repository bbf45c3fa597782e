// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// Merge combines a remote envelope with the local one.
//
// The result holds the union of node identities. Local nodes come first in
// local order, followed by remote-only nodes in remote order. When a node
// exists on both sides the copy with the later effective modification time
// ([models.BookmarkNode.ModifiedAt]) wins; ties keep the local copy.
//
// Metadata is recomputed, DeviceID is set to deviceID and LastModified to
// now. Merge performs no I/O and never drops a node: a duplicate identity
// inside one input is reported as [ErrMerge].
func Merge(remote, local models.SyncEnvelope, deviceID string, now time.Time) (models.SyncEnvelope, error) {
	remoteNodes := FlattenNodes(remote.Nodes)
	localNodes := FlattenNodes(local.Nodes)

	remoteByID, err := indexNodes(remoteNodes)
	if err != nil {
		return models.SyncEnvelope{}, fmt.Errorf("%w: remote: %w", ErrMerge, err)
	}
	localByID, err := indexNodes(localNodes)
	if err != nil {
		return models.SyncEnvelope{}, fmt.Errorf("%w: local: %w", ErrMerge, err)
	}

	merged := make([]models.BookmarkNode, 0, len(localNodes)+len(remoteNodes))
	for _, l := range localNodes {
		if r, ok := remoteByID[l.ID]; ok && r.ModifiedAt() > l.ModifiedAt() {
			merged = append(merged, r)
			continue
		}
		merged = append(merged, l)
	}
	for _, r := range remoteNodes {
		if _, ok := localByID[r.ID]; !ok {
			merged = append(merged, r)
		}
	}

	if missing := len(remoteByID) + len(localByID) - sharedCount(remoteByID, localByID) - len(merged); missing != 0 {
		return models.SyncEnvelope{}, fmt.Errorf("%w: %d identities lost", ErrMerge, missing)
	}

	out := models.SyncEnvelope{
		SchemaVersion: models.SchemaVersion,
		LastModified:  now.UTC(),
		DeviceID:      deviceID,
		Nodes:         merged,
		Metadata:      models.EnvelopeMetadata{LastSync: local.Metadata.LastSync},
	}
	RecomputeMetadata(&out)

	return out, nil
}

// RemoteOnlyNodes returns the nodes of merged whose identity is absent from
// local, in merged order.
func RemoteOnlyNodes(merged, local models.SyncEnvelope) []models.BookmarkNode {
	known := make(map[string]struct{}, len(local.Nodes))
	for _, n := range FlattenNodes(local.Nodes) {
		known[n.ID] = struct{}{}
	}

	var out []models.BookmarkNode
	for _, n := range FlattenNodes(merged.Nodes) {
		if _, ok := known[n.ID]; !ok {
			out = append(out, n)
		}
	}
	return out
}

func indexNodes(nodes []models.BookmarkNode) (map[string]models.BookmarkNode, error) {
	byID := make(map[string]models.BookmarkNode, len(nodes))
	for _, n := range nodes {
		if _, dup := byID[n.ID]; dup {
			return nil, fmt.Errorf("duplicate identity %q", n.ID)
		}
		byID[n.ID] = n
	}
	return byID, nil
}

func sharedCount(a, b map[string]models.BookmarkNode) int {
	shared := 0
	for id := range a {
		if _, ok := b[id]; ok {
			shared++
		}
	}
	return shared
}
