// Package http holds outbound HTTP plumbing shared by the adapters.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client for calls to third-party APIs such as the payment provider.
// timeout bounds the whole request; http.DefaultClient has none and is never used.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
