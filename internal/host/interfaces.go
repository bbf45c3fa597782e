// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package host reads and extends the bookmark tree owned by the host
// browser and reports changes made to it.
package host

import (
	"context"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/host_mock.go -package=mock

// TreeReader returns a consistent snapshot of the full host forest. The
// top-level nodes of the forest are synthetic roots.
type TreeReader interface {
	ReadTree(ctx context.Context) ([]models.HostNode, error)
}

// TreeWriter adds nodes the host does not have yet. Nodes whose identity
// already exists are left untouched. It returns the number of nodes added.
type TreeWriter interface {
	AddNodes(ctx context.Context, nodes []models.BookmarkNode) (int, error)
}
