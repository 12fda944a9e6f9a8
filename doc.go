// Package awsjson implements clients for AWS services that speak the AWS JSON
// and REST-JSON protocols, in the Go way.
//
// # Records
//
// Requests and results are plain structs with nilable members. Every record
// type declares its wire layout once with a [github.com/awsjson/awsjson.go/jsonwire.Schema];
// the codec never reflects over struct fields. A nil member is absent on the wire,
// unknown keys in responses are skipped, and a response member that holds a
// non-object where a record is expected decodes to nil.
//
// # Connections
//
// [New] creates a [Client] over HTTP from a [connection.Config]. The config
// names the service, the endpoint (or the region to derive it from), the codec,
// the logger, the optional metrics and the request handlers and signer.
// [FromConnection] wraps any other [connection.Connection].
//
// Service packages under services/ wrap a Client with one typed method per
// operation, e.g. [github.com/awsjson/awsjson.go/services/sagemaker].
//
// # Generic invocation
//
// [Invoke] is used internally by every service method.
//
// Use it directly to call an operation the service packages do not cover yet,
// as long as its records have schemas.
//
// # Errors
//
// Failures reported by the service are [connection.ServiceError] values and carry the
// service's error code, message, HTTP status and request id. Local failures are
// [connection.RequestError] values. Both satisfy aws-sdk-go's awserr.Error, so
// [ErrorCode] and [IsErrorCode] work on either.
package awsjson
