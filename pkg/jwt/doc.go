// Package jwt reads the segments of a dot-delimited token returned by a
// token endpoint.
//
// A token has the shape header.payload.signature. ExtractPayload splits the
// token into at most three pieces, decodes the second one from standard
// base64 and unmarshals the JSON into a caller-chosen type. The signature is
// never checked, so decoded claims must not be treated as authenticated.
//
// # Usage
//
//	encoded := jwt.Encoded{AccessToken: "eyJhbGciOiJub25lIn0.eyJzdWIiOiIxMjMifQ.sig"}
//
//	claims, err := jwt.ExtractPayload[map[string]any](encoded)
//	if err != nil {
//	    // errors.Is(err, jwt.ErrMalformedToken) and friends
//	}
//	fmt.Println(claims["sub"]) // 123
//
// Typed claims work the same way:
//
//	std, err := jwt.ExtractPayload[jwt.StandardClaims](encoded)
//
// A different segment decoder can be supplied with ExtractPayloadWith, which
// is mostly useful in tests.
//
// # Error Handling
//
//   - ErrMalformedToken  – fewer than two segments.
//   - ErrInvalidEncoding – the segment contains characters outside the base64 alphabet.
//   - ErrInvalidClaims   – the decoded bytes are not JSON matching T.
//
// The last two wrap the underlying encoding/base64 or encoding/json error.
package jwt
