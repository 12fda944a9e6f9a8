package awsjson

import (
	"errors"

	"github.com/aws/aws-sdk-go/aws/awserr"

	"github.com/awsjson/awsjson.go/pkg/connection"
)

// AsServiceError returns the service error in err's chain, if any.
func AsServiceError(err error) (*connection.ServiceError, bool) {
	var svcErr *connection.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// IsRequestError reports whether err is a local failure: the request could
// not be built or sent, or its response could not be decoded.
func IsRequestError(err error) bool {
	var reqErr *connection.RequestError
	return errors.As(err, &reqErr)
}

// ErrorCode returns the code of err, or "" if err carries none.
func ErrorCode(err error) string {
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		return aerr.Code()
	}
	return ""
}

// IsErrorCode reports whether err carries the given, non-empty error code.
func IsErrorCode(err error, code string) bool {
	return code != "" && ErrorCode(err) == code
}
