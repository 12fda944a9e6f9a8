package constants

import "time"

const (
	DefaultHTTPTimeout = 30 * time.Second
	DefaultUserAgent   = "awsjson.go/1.0"
	DefaultRegion      = "us-east-1"
)

// Error codes of local failures, shared with aws-sdk-go.
const (
	ErrCodeRequestError    = "RequestError"
	ErrCodeSerialization   = "SerializationError"
	ErrCodeRequestCanceled = "RequestCanceled"
)

// Headers
const (
	HeaderContentType    = "Content-Type"
	HeaderTarget         = "X-Amz-Target"
	HeaderUserAgent      = "User-Agent"
	HeaderInvocationID   = "amz-sdk-invocation-id"
	HeaderRequestID      = "X-Amzn-Requestid"
	HeaderErrorType      = "X-Amzn-Errortype"
	HeaderSecurityToken  = "X-Amz-Security-Token"
	HeaderAlternateReqID = "X-Amz-Request-Id"
)

var HTTPSecureScheme = "https"
