package httpclient

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// New returns a resty.Client with the specified request timeout.
func New(timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetTimeout(timeout)
	return c
}

// NewWithRetry returns a client that additionally retries failed requests.
// Retries apply to transport errors and 5xx/429 responses; a non-positive
// retry count disables them.
func NewWithRetry(timeout time.Duration, retries int, wait time.Duration) *resty.Client {
	c := New(timeout)
	if retries <= 0 {
		return c
	}
	c.SetRetryCount(retries)
	if wait > 0 {
		c.SetRetryWaitTime(wait)
	}
	c.AddRetryCondition(func(r *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		return r.StatusCode() == 429 || r.StatusCode() >= 500
	})
	return c
}
