// Package tokenclient exchanges a client id/secret pair for a signed token
// and returns the token together with its decoded claims.
//
// A single call issues one POST request with a JSON body
// {"client_id": ..., "client_secret": ...} and the header
// Content-Type: application/json. The endpoint is expected to answer with
// {"access_token": "<header>.<payload>.<signature>"}; the payload segment is
// decoded with package jwt. The signature is not verified and expiry is not
// checked, so the claims are informational only.
//
// # Usage
//
//	client := tokenclient.New(
//		tokenclient.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
//		tokenclient.WithLogger(log),
//	)
//
//	resp, err := tokenclient.Request[map[string]any](ctx, client,
//		tokenclient.Configuration{URL: "https://auth.example.com/token", Params: "audience=api"},
//		tokenclient.Credentials{ClientID: "id", ClientSecret: "secret"},
//	)
//
// RequestToken does the same with a package-level default client.
//
// # Error Handling
//
// Three kinds of failure are distinguished:
//
//   - Validation: ErrMissingURL, ErrMissingClientID, ErrMissingClientSecret,
//     checked in that order before any network activity. All match
//     errors.Is(err, ErrValidation).
//   - *RemoteError: the endpoint returned a non-2xx status. Body carries the
//     server's JSON unchanged; use Decode to read it.
//   - *ResponseError: anything else (transport failure, unreadable or
//     malformed body, undecodable token). Message is the cause's text and
//     errors.Is reaches the cause.
//
// There are no retries: a failure is final for that call.
//
// # oauth2 Integration
//
// TokenSource exposes the exchange as an oauth2.TokenSource and NewHTTPClient
// builds an *http.Client that authenticates outgoing requests with it. Neither
// caches tokens.
package tokenclient
