package connection

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/awserr"

	"github.com/awsjson/awsjson.go/pkg/constants"
)

// ServiceError is a failure signaled by the remote service.
// Declared reports whether the code is part of the operation's or the
// service's error catalogue; undeclared codes are generic service failures.
type ServiceError struct {
	Service   string
	Operation string

	code       string
	message    string
	statusCode int
	requestID  string
	declared   bool
}

var _ awserr.RequestFailure = (*ServiceError)(nil)

func NewServiceError(service, operation, code, message string, statusCode int, requestID string, declared bool) *ServiceError {
	return &ServiceError{
		Service:    service,
		Operation:  operation,
		code:       code,
		message:    message,
		statusCode: statusCode,
		requestID:  requestID,
		declared:   declared,
	}
}

func (e *ServiceError) Error() string {
	extra := fmt.Sprintf("status code: %d, request id: %s", e.statusCode, e.requestID)
	return fmt.Sprintf("%s %s: %s", e.Service, e.Operation, awserr.SprintError(e.code, e.message, extra, nil))
}

func (e *ServiceError) Code() string    { return e.code }
func (e *ServiceError) Message() string { return e.message }
func (e *ServiceError) OrigErr() error  { return nil }

func (e *ServiceError) StatusCode() int   { return e.statusCode }
func (e *ServiceError) RequestID() string { return e.requestID }
func (e *ServiceError) Declared() bool    { return e.declared }

// RequestError is a local failure: the request could not be built, sent,
// or its response could not be read or decoded.
type RequestError struct {
	code    string
	message string
	cause   error
}

var _ awserr.Error = (*RequestError)(nil)

func NewRequestError(code, message string, cause error) *RequestError {
	return &RequestError{code: code, message: message, cause: cause}
}

func (e *RequestError) Error() string {
	return awserr.SprintError(e.code, e.message, "", e.cause)
}

func (e *RequestError) Code() string    { return e.code }
func (e *RequestError) Message() string { return e.message }
func (e *RequestError) OrigErr() error  { return e.cause }
func (e *RequestError) Unwrap() error   { return e.cause }

// SerializationError reports a request or response that could not be encoded or decoded.
func SerializationError(message string, cause error) *RequestError {
	return NewRequestError(constants.ErrCodeSerialization, message, cause)
}
