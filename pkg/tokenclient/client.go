package tokenclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/jwtcli/pkg/jwt"
	"github.com/dmitrymomot/jwtcli/pkg/logger"
)

// Client exchanges client credentials for a token.
// The zero value is not usable; create instances with New.
// A Client holds no per-call state and is safe for concurrent use.
type Client struct {
	httpClient HTTPDoer
	decode     jwt.Decoder
	logger     *slog.Logger
}

// New creates a Client. Without options it uses a plain *http.Client with no
// timeout; bound the call through the context or WithHTTPClient.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		decode:     jwt.DecodeSegment,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("tokenclient"))
	return c
}

var defaultClient = New()

// RequestToken performs the exchange with a default Client.
func RequestToken[T any](ctx context.Context, cfg Configuration, creds Credentials) (*Response[T], error) {
	return Request[T](ctx, defaultClient, cfg, creds)
}

// Request POSTs creds as JSON to cfg.Target() and decodes the returned
// access token's claims into T. The token signature is NOT verified.
//
// Errors:
//   - ErrMissingURL, ErrMissingClientID, ErrMissingClientSecret before any
//     network activity (all match ErrValidation);
//   - *RemoteError when the endpoint answers with a non-2xx status and a JSON body;
//   - *ResponseError for everything else that goes wrong during the exchange.
//
// Example:
//
//	type Claims struct {
//		Sub   string `json:"sub"`
//		Scope string `json:"scope"`
//	}
//
//	resp, err := tokenclient.Request[Claims](ctx, client,
//		tokenclient.Configuration{URL: "https://auth.example.com/token"},
//		tokenclient.Credentials{ClientID: id, ClientSecret: secret},
//	)
//	if err != nil {
//		var remote *tokenclient.RemoteError
//		if errors.As(err, &remote) {
//			// inspect remote.Body
//		}
//		return err
//	}
//	req.Header.Set("Authorization", "Bearer "+resp.Encoded.AccessToken)
func Request[T any](ctx context.Context, c *Client, cfg Configuration, creds Credentials) (*Response[T], error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}
	if err := creds.validate(); err != nil {
		return nil, err
	}
	if c == nil {
		c = defaultClient
	}

	log := c.logger.With(logger.RequestID(uuid.NewString()))
	start := time.Now()
	log.DebugContext(ctx, "requesting token", logger.URL(redactURL(cfg.URL)))

	status, body, err := c.exchange(ctx, cfg.Target(), creds)
	if err != nil {
		log.DebugContext(ctx, "token request failed",
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		return nil, newResponseError(err)
	}

	log.DebugContext(ctx, "token endpoint responded",
		logger.StatusCode(status),
		logger.Duration(time.Since(start)),
	)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &RemoteError{StatusCode: status, Body: body}
	}

	var encoded jwt.Encoded
	if err := json.Unmarshal(body, &encoded); err != nil {
		return nil, newResponseError(err)
	}

	data, err := jwt.ExtractPayloadWith[T](encoded, c.decode)
	if err != nil {
		log.DebugContext(ctx, "failed to decode token payload", logger.Error(err))
		return nil, newResponseError(err)
	}

	return &Response[T]{Encoded: encoded, Data: data}, nil
}

// exchange sends the request and returns the status together with the body,
// which is guaranteed to be valid JSON.
func (c *Client) exchange(ctx context.Context, target string, creds Credentials) (int, json.RawMessage, error) {
	payload, err := json.Marshal(creds)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	var body json.RawMessage
	if err := json.Unmarshal(content, &body); err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, body, nil
}

// redactURL masks the password in userinfo so it never reaches the log.
// Unparseable input is dropped rather than echoed.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid>"
	}
	return u.Redacted()
}
