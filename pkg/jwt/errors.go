package jwt

import "errors"

var (
	ErrMalformedToken  = errors.New("jwt: token must contain at least two segments")
	ErrInvalidEncoding = errors.New("jwt: segment is not valid base64")
	ErrInvalidClaims   = errors.New("jwt: segment is not valid json")
)
