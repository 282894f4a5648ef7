package tokenclient

import "github.com/dmitrymomot/jwtcli/pkg/jwt"

// Configuration describes the token-issuing endpoint.
type Configuration struct {
	// URL of the token endpoint. Required.
	URL string `env:"URL"`

	// Params is an optional raw query string appended as "?"+Params.
	Params string `env:"PARAMS"`
}

// Target returns the request URL for this configuration.
func (c Configuration) Target() string {
	if c.Params == "" {
		return c.URL
	}
	return c.URL + "?" + c.Params
}

// Credentials identify the caller. They are sent verbatim as the request body.
type Credentials struct {
	ClientID     string `json:"client_id" env:"CLIENT_ID"`
	ClientSecret string `json:"client_secret" env:"CLIENT_SECRET"`
}

func (c Credentials) validate() error {
	if c.ClientID == "" {
		return ErrMissingClientID
	}
	if c.ClientSecret == "" {
		return ErrMissingClientSecret
	}
	return nil
}

// Response is the result of a successful exchange: the token as received and
// its decoded, unverified claims.
type Response[T any] struct {
	Encoded jwt.Encoded `json:"encoded"`
	Data    T           `json:"data"`
}
