// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// WriteBackup stores backup as indented JSON, replacing path atomically.
func WriteBackup(path string, backup models.Backup) error {
	if path == "" {
		return ErrEmptyBackupPath
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteBackup, err)
	}
	if err = writeFileAtomic(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteBackup, err)
	}
	return nil
}

func ReadBackup(path string) (models.Backup, error) {
	if path == "" {
		return models.Backup{}, ErrEmptyBackupPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Backup{}, fmt.Errorf("%w: %w", ErrReadBackup, err)
	}

	var backup models.Backup
	if err = json.Unmarshal(data, &backup); err != nil {
		return models.Backup{}, fmt.Errorf("%w: %w", ErrReadBackup, err)
	}
	return backup, nil
}
