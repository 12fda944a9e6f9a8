package constants

import "errors"

// Errors
var (
	ErrNoEndpoint    = errors.New("endpoint url not set")
	ErrNoService     = errors.New("service info not set")
	ErrNoMarshaler   = errors.New("marshaler is not set")
	ErrNoUnmarshaler = errors.New("unmarshaler is not set")
	ErrNoOperation   = errors.New("operation is not set")
)

var (
	ErrNoSchema        = errors.New("no schema registered for record type")
	ErrNilRecord       = errors.New("record is nil")
	ErrInvalidToken    = errors.New("invalid token or unexpected end of input")
	ErrTrailingData    = errors.New("unexpected data after top-level value")
	ErrMissingURILabel = errors.New("uri label has no value")
	ErrUnknownProtocol = errors.New("unknown protocol")
)
