package adapter

import "errors"

var (
	// ErrRequestFailed wraps any server-side rejection that is not a
	// validation failure. The server's detail message is appended.
	ErrRequestFailed = errors.New("request failed")

	// ErrValidationFailed signals a 422 response; the offending fields
	// are appended to the error message.
	ErrValidationFailed = errors.New("request validation failed")
)
