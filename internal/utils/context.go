// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the client packages: context
// keys, JSON responses, the REST client, control tokens, identifiers and
// content fingerprints.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so values stored by this
// package never collide with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// DeviceIDCtxKey holds the device id taken from an authenticated control
// token.
//
//	ctx := context.WithValue(ctx, utils.DeviceIDCtxKey, "device_1700000000000_deadbeef")
var DeviceIDCtxKey = contextKey("deviceID")

// GetDeviceIDFromContext returns the device id stored under DeviceIDCtxKey.
// ok is false when the value is missing, empty or not a string.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok && deviceID != ""
}
