// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrSchemaViolation       = errors.New("envelope does not match schema")
	ErrInvalidSchemaVersion  = errors.New("invalid or unsupported schema version")
	ErrEmptyDeviceID         = errors.New("device id is required")
	ErrEmptyLastModified     = errors.New("last modified instant is required")
	ErrEmptyNodeID           = errors.New("node id is required")
	ErrDuplicateNodeID       = errors.New("duplicate node id")
	ErrNegativeIndex         = errors.New("node index must not be negative")
	ErrBookmarkWithChildren  = errors.New("bookmark node must not have children")
	ErrParentIsBookmark      = errors.New("parent node is a bookmark")
	ErrParentCycle           = errors.New("parent linkage forms a cycle")
	ErrParentMismatch        = errors.New("nested node names a different parent")
	ErrMetadataMismatch      = errors.New("metadata does not match nodes")
	ErrMetadataSchemaVersion = errors.New("metadata schema version does not match envelope")
)
