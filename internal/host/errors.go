// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import "errors"

var (
	ErrEmptyBookmarksPath = errors.New("bookmarks file path is empty")
	ErrReadBookmarks      = errors.New("could not read bookmarks file")
	ErrDecodeBookmarks    = errors.New("bookmarks file is not valid JSON")
	ErrMissingRoots       = errors.New("bookmarks file has no roots")
	ErrWriteBookmarks     = errors.New("could not write bookmarks file")
	ErrEmptyBackupPath    = errors.New("backup file path is empty")
	ErrReadBackup         = errors.New("could not read backup file")
	ErrWriteBackup        = errors.New("could not write backup file")
)
