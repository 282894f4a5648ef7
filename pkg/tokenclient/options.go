package tokenclient

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/jwtcli/pkg/jwt"
)

// HTTPDoer sends a single HTTP request. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the transport used for the exchange.
// Useful for timeouts, proxies, or testing. Nil is ignored.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		if doer != nil {
			c.httpClient = doer
		}
	}
}

// WithDecoder replaces the base64 decoder applied to the claims segment.
func WithDecoder(decode jwt.Decoder) Option {
	return func(c *Client) {
		if decode != nil {
			c.decode = decode
		}
	}
}

// WithLogger sets the logger used for debug output. Credentials and tokens
// are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}
