// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the sync engine to its host, remote and storage and
// runs it in the mode selected on the command line.
//
// The default mode is a daemon that syncs once at startup, then on a timer,
// on host bookmark changes and on control API requests. The other modes run
// one operation and print its result.
package client
