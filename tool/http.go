package tool

import (
	"net/http"
	"time"
)

var DefaultFetchTimeout = 5 * time.Second

// NewHTTPClient creates the client used for the one-shot registry fetch. The
// timeout bounds the whole request; expiry is treated as fetch failure by the
// caller.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     300 * time.Millisecond,
		},
	}
}
