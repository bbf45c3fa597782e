// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteKind selects the hosted-file backend.
type RemoteKind string

const (
	// RemoteKindGist stores the envelope as the only file of a GitHub gist.
	RemoteKindGist RemoteKind = "gist"
	// RemoteKindRepo stores the envelope at a fixed path of a repository branch.
	RemoteKindRepo RemoteKind = "repo"
)

// RemoteLocation identifies where the envelope lives. Only the fields of the
// active Kind are meaningful.
type RemoteLocation struct {
	Kind RemoteKind `json:"kind"`

	GistID   string `json:"gistId,omitempty"`
	FileName string `json:"fileName,omitempty"`

	Owner  string `json:"owner,omitempty"`
	Repo   string `json:"repo,omitempty"`
	Branch string `json:"branch,omitempty"`
	Path   string `json:"path,omitempty"`
}

// ConcurrencyToken is the opaque version marker returned by a read and
// required by a guarded write.
type ConcurrencyToken string

// RemoteSnapshot is the result of a successful remote read.
type RemoteSnapshot struct {
	Envelope SyncEnvelope
	Token    ConcurrencyToken
}

// WriteResult is the result of a successful remote write. Location may differ
// from the requested one when the write created the container.
type WriteResult struct {
	Token    ConcurrencyToken
	Location RemoteLocation
}
