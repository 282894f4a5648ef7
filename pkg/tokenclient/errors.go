package tokenclient

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrValidation matches every input validation error via errors.Is.
var ErrValidation = errors.New("jwtcli: invalid input")

var (
	ErrMissingURL          error = validationError("jwtcli: missing URL")
	ErrMissingClientID     error = validationError("jwtcli: missing client id")
	ErrMissingClientSecret error = validationError("jwtcli: missing client secret")
)

type validationError string

func (e validationError) Error() string { return string(e) }

func (e validationError) Is(target error) bool { return target == ErrValidation }

// RemoteError is returned when the token endpoint answers with a non-2xx
// status. Body holds the JSON the server sent, unmodified.
type RemoteError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("jwtcli: token endpoint returned status %d: %s", e.StatusCode, string(e.Body))
}

// Decode unmarshals the server's error body into v.
func (e *RemoteError) Decode(v any) error {
	return json.Unmarshal(e.Body, v)
}

// ResponseError reports any failure while talking to the endpoint or reading
// its answer: transport errors, unreadable bodies, malformed JSON and tokens
// whose payload cannot be decoded all end up here.
type ResponseError struct {
	Message string `json:"message"`

	err error
}

func newResponseError(err error) *ResponseError {
	return &ResponseError{Message: err.Error(), err: err}
}

func (e *ResponseError) Error() string { return e.Message }

func (e *ResponseError) Unwrap() error { return e.err }
