// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument is returned when a command needs a positional
	// argument, such as the file of backup and restore.
	ErrMissingArgument = errors.New("missing command argument")

	// ErrTokenSignKeyNotSet is returned by the token command when the
	// control API runs without authentication.
	ErrTokenSignKeyNotSet = errors.New("token sign key is not configured")
)
