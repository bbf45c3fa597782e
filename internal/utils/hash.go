// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

var hasherPool = sync.Pool{
	New: func() any { return sha256.New() },
}

// Fingerprint returns the hex SHA-256 digest of data. The change watcher
// uses it to recognise files the client wrote itself, and the offline queue
// to skip envelopes it already holds.
func Fingerprint(data []byte) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}
