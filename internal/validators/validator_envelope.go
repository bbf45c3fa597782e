// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bookmark-sync/models"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const (
	FieldSchema        = "schema"
	FieldSchemaVersion = "schema_version"
	FieldDeviceID      = "device_id"
	FieldLastModified  = "last_modified"
	FieldNodes         = "nodes"
	FieldMetadata      = "metadata"
	FieldKind          = "kind"
	FieldPayload       = "payload"
)

const envelopeSchemaURL = "envelope.schema.json"

//go:embed envelope.schema.json
var envelopeSchema []byte

// EnvelopeValidator checks sync envelopes and queued operations that carry them.
type EnvelopeValidator struct {
	schema *jsonschema.Schema
}

// NewEnvelopeValidator compiles the embedded envelope schema.
func NewEnvelopeValidator() (*EnvelopeValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(envelopeSchema))
	if err != nil {
		return nil, fmt.Errorf("decode envelope schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err = c.AddResource(envelopeSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add envelope schema: %w", err)
	}

	sch, err := c.Compile(envelopeSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile envelope schema: %w", err)
	}

	return &EnvelopeValidator{schema: sch}, nil
}

// MustNewEnvelopeValidator is like NewEnvelopeValidator but panics on error.
// The schema is embedded, so a failure is a programming error.
func MustNewEnvelopeValidator() *EnvelopeValidator {
	v, err := NewEnvelopeValidator()
	if err != nil {
		panic(err)
	}
	return v
}

func (v *EnvelopeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncEnvelope:
		return v.validateEnvelope(ctx, value, fields...)
	case *models.SyncEnvelope:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEnvelope(ctx, *value, fields...)

	case models.PendingOperation:
		return v.validatePendingOperation(ctx, value, fields...)
	case *models.PendingOperation:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePendingOperation(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EnvelopeValidator) validateEnvelope(_ context.Context, env models.SyncEnvelope, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSchema, FieldSchemaVersion, FieldDeviceID, FieldLastModified, FieldNodes, FieldMetadata}
	}

	for _, f := range fields {
		switch f {
		case FieldSchema:
			if err := v.validateSchema(env); err != nil {
				return err
			}
		case FieldSchemaVersion:
			if !isSupportedSchemaVersion(env.SchemaVersion) {
				return fmt.Errorf("%w: %q", ErrInvalidSchemaVersion, env.SchemaVersion)
			}
		case FieldDeviceID:
			if strings.TrimSpace(env.DeviceID) == "" {
				return ErrEmptyDeviceID
			}
		case FieldLastModified:
			if env.LastModified.IsZero() {
				return ErrEmptyLastModified
			}
		case FieldNodes:
			if err := validateNodes(env.Nodes); err != nil {
				return err
			}
		case FieldMetadata:
			bookmarks, folders := models.CountNodes(env.Nodes)
			if env.Metadata.TotalCount != bookmarks || env.Metadata.FolderCount != folders {
				return fmt.Errorf("%w: metadata reports %d bookmarks and %d folders, nodes hold %d and %d",
					ErrMetadataMismatch, env.Metadata.TotalCount, env.Metadata.FolderCount, bookmarks, folders)
			}
			if env.Metadata.SchemaVersion != "" && env.Metadata.SchemaVersion != env.SchemaVersion {
				return ErrMetadataSchemaVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EnvelopeValidator) validatePendingOperation(ctx context.Context, op models.PendingOperation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if op.Kind != models.OperationKindUpdate {
				return fmt.Errorf("%w: unsupported operation kind %q", ErrUnsupportedType, op.Kind)
			}
		case FieldPayload:
			if err := v.validateEnvelope(ctx, op.Payload); err != nil {
				return fmt.Errorf("pending operation %s: %w", op.ID, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSchema checks the wire shape of the envelope as it would be written.
func (v *EnvelopeValidator) validateSchema(env models.SyncEnvelope) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}

	if err = v.schema.Validate(inst); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	return nil
}

// isSupportedSchemaVersion accepts any version sharing the major component
// of models.SchemaVersion.
func isSupportedSchemaVersion(version string) bool {
	major, _, ok := strings.Cut(version, ".")
	if !ok || major == "" {
		return false
	}
	supported, _, _ := strings.Cut(models.SchemaVersion, ".")
	return major == supported
}

// validateNodes checks identity uniqueness, sibling indices and parent
// linkage. A parent id that is not part of the set is accepted, since a
// partial tree may reference containers owned by the host.
func validateNodes(nodes []models.BookmarkNode) error {
	byID := make(map[string]models.BookmarkNode)

	var walk func(list []models.BookmarkNode, parent *models.BookmarkNode) error
	walk = func(list []models.BookmarkNode, parent *models.BookmarkNode) error {
		for _, n := range list {
			if strings.TrimSpace(n.ID) == "" {
				return ErrEmptyNodeID
			}
			if _, ok := byID[n.ID]; ok {
				return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
			}
			if n.Index < 0 {
				return fmt.Errorf("%w: node %q", ErrNegativeIndex, n.ID)
			}
			if !n.IsFolder() && len(n.Children) > 0 {
				return fmt.Errorf("%w: node %q", ErrBookmarkWithChildren, n.ID)
			}
			if parent != nil && n.ParentID != "" && n.ParentID != parent.ID {
				return fmt.Errorf("%w: node %q is nested under %q but names parent %q",
					ErrParentMismatch, n.ID, parent.ID, n.ParentID)
			}
			byID[n.ID] = n

			if err := walk(n.Children, &n); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(nodes, nil); err != nil {
		return err
	}

	for id, n := range byID {
		if n.ParentID == "" {
			continue
		}
		parent, ok := byID[n.ParentID]
		if !ok {
			continue
		}
		if !parent.IsFolder() {
			return fmt.Errorf("%w: node %q names bookmark %q as parent", ErrParentIsBookmark, id, parent.ID)
		}
		if hasParentCycle(byID, id) {
			return fmt.Errorf("%w: starting at node %q", ErrParentCycle, id)
		}
	}

	return nil
}

func hasParentCycle(byID map[string]models.BookmarkNode, start string) bool {
	seen := map[string]struct{}{start: {}}
	cur := byID[start].ParentID
	for cur != "" {
		if _, ok := seen[cur]; ok {
			return true
		}
		seen[cur] = struct{}{}
		next, ok := byID[cur]
		if !ok {
			return false
		}
		cur = next.ParentID
	}
	return false
}
