// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// ControlToken is a bearer token accepted by the local control API.
type ControlToken struct {
	// Token is the parsed or freshly signed JWT.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// Subject is the "sub" claim, the device id the token was issued to.
	Subject string `json:"-"`
}

// String returns the compact JWS form of the token.
func (t ControlToken) String() string {
	return t.SignedString
}
