// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the bookmark sync client.
//
// Configuration is assembled from multiple sources. For any field set in
// more than one source, the earlier source wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied after merging. The entry point is [GetClientConfig].
package config
