package jwt

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// segmentSeparator divides a token into header, payload and signature.
const segmentSeparator = "."

// maxSegments caps the split so a signature containing dots stays in one piece.
const maxSegments = 3

// Encoded is the envelope returned by a token endpoint.
type Encoded struct {
	AccessToken string `json:"access_token"`
}

// Header represents the JOSE header carried in the first segment.
type Header struct {
	Type      string `json:"typ,omitempty"`
	Algorithm string `json:"alg,omitempty"`
	KeyID     string `json:"kid,omitempty"`
}

// StandardClaims mirrors the registered claims of RFC 7519 Section 4.1.
// It is a convenience target for ExtractPayload; nothing in this package
// validates its temporal fields.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// Decoder turns a single token segment into raw bytes.
type Decoder func(segment string) ([]byte, error)

// DecodeSegment decodes a segment written in the standard base64 alphabet.
// Padding is optional, so both "eyJzdWIiOiIxMjMifQ" and
// "eyJzdWIiOiIxMjMifQ==" decode to the same bytes. Up to two "=" are
// accepted, and only when they complete a multiple of four characters.
func DecodeSegment(segment string) ([]byte, error) {
	if len(segment)%4 == 0 {
		segment = strings.TrimSuffix(segment, "=")
		segment = strings.TrimSuffix(segment, "=")
	}
	return base64.RawStdEncoding.DecodeString(segment)
}

// Segments returns the header and payload segments of a token.
// The signature segment is optional and never inspected.
func Segments(token string) (header, payload string, err error) {
	parts := strings.SplitN(token, segmentSeparator, maxSegments)
	if len(parts) < 2 {
		return "", "", ErrMalformedToken
	}
	return parts[0], parts[1], nil
}

// ExtractPayload decodes the claims segment of encoded.AccessToken into T.
// The signature is NOT verified: treat the result as untrusted input.
func ExtractPayload[T any](encoded Encoded) (T, error) {
	return ExtractPayloadWith[T](encoded, DecodeSegment)
}

// ExtractPayloadWith works like ExtractPayload with a caller-provided decoder.
func ExtractPayloadWith[T any](encoded Encoded, decode Decoder) (T, error) {
	var claims T

	_, payload, err := Segments(encoded.AccessToken)
	if err != nil {
		return claims, err
	}

	if err := unmarshalSegment(payload, decode, &claims); err != nil {
		return claims, err
	}

	return claims, nil
}

// ExtractHeader decodes the header segment of encoded.AccessToken.
func ExtractHeader(encoded Encoded) (Header, error) {
	var header Header

	segment, _, err := Segments(encoded.AccessToken)
	if err != nil {
		return header, err
	}

	if err := unmarshalSegment(segment, DecodeSegment, &header); err != nil {
		return header, err
	}

	return header, nil
}

func unmarshalSegment(segment string, decode Decoder, v any) error {
	if decode == nil {
		decode = DecodeSegment
	}

	raw, err := decode(segment)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}

	return nil
}
