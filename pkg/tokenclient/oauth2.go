package tokenclient

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// TokenSource adapts the exchange to oauth2.TokenSource.
// Every Token call performs a fresh exchange; wrap the result with
// oauth2.ReuseTokenSource if reuse is wanted.
func TokenSource(ctx context.Context, c *Client, cfg Configuration, creds Credentials) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, client: c, cfg: cfg, creds: creds}
}

// NewHTTPClient returns an *http.Client that sends every request with a
// bearer token from a fresh exchange. base may be nil for
// http.DefaultTransport.
func NewHTTPClient(ctx context.Context, c *Client, cfg Configuration, creds Credentials, base http.RoundTripper) *http.Client {
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: TokenSource(ctx, c, cfg, creds),
			Base:   base,
		},
	}
}

// expiryClaims reads only "exp"; other registered claims vary in shape
// between issuers ("aud" may be a string or a list).
type expiryClaims struct {
	ExpiresAt float64 `json:"exp"`
}

type tokenSource struct {
	ctx    context.Context
	client *Client
	cfg    Configuration
	creds  Credentials
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	resp, err := Request[expiryClaims](s.ctx, s.client, s.cfg, s.creds)
	if err != nil {
		return nil, err
	}

	token := &oauth2.Token{
		AccessToken: resp.Encoded.AccessToken,
		TokenType:   "Bearer",
	}
	if resp.Data.ExpiresAt > 0 {
		token.Expiry = time.Unix(int64(resp.Data.ExpiresAt), 0)
	}
	return token, nil
}
