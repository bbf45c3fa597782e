// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for the remote store backends. Base URL,
// credentials and headers are configured by the caller.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool.
//
//	client := utils.NewHTTPClient()
//	client.SetBaseURL("https://api.github.com").SetAuthToken(token)
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
