package connection

import (
	"context"
	"net/http"
)

// Protocol is the wire protocol a service speaks.
type Protocol string

const (
	// ProtocolJSON is the AWS JSON RPC protocol: every operation is a POST to "/"
	// with the operation named in the X-Amz-Target header.
	ProtocolJSON Protocol = "json"
	// ProtocolRESTJSON binds operations to HTTP methods and URI templates and
	// carries the remaining members in a JSON body.
	ProtocolRESTJSON Protocol = "rest-json"
)

// ServiceInfo identifies a service and how to reach it.
type ServiceInfo struct {
	// Name is the service name used in logs, metrics and errors, e.g. "SageMaker".
	Name string
	// EndpointPrefix is the host prefix of the regional endpoint, e.g. "api.sagemaker".
	EndpointPrefix string
	// SigningName is the name handed to the signer. Defaults to EndpointPrefix.
	SigningName string
	// TargetPrefix prefixes the operation name in the X-Amz-Target header.
	TargetPrefix string
	// JSONVersion selects the application/x-amz-json-<version> content type.
	JSONVersion string
	APIVersion  string
	Protocol    Protocol
	// Errors lists error codes any operation of the service may return.
	Errors []string
}

// Operation describes one remote call.
type Operation struct {
	Name string
	// HTTPMethod defaults to POST.
	HTTPMethod string
	// RequestURI is the URI template, e.g. "/apps/{appId}". Defaults to "/".
	RequestURI string
	// Errors lists the error codes this operation declares.
	Errors []string
}

func (op *Operation) Method() string {
	if op.HTTPMethod == "" {
		return http.MethodPost
	}
	return op.HTTPMethod
}

func (op *Operation) URI() string {
	if op.RequestURI == "" {
		return "/"
	}
	return op.RequestURI
}

// Declares reports whether code is declared by the operation or by the service.
func (op *Operation) Declares(service *ServiceInfo, code string) bool {
	for _, c := range op.Errors {
		if c == code {
			return true
		}
	}
	for _, c := range service.Errors {
		if c == code {
			return true
		}
	}
	return false
}

// Connection executes operations. in points to a request record; out points
// to a result record, or is nil for operations without a result.
// Every call is an independent request/response exchange.
type Connection interface {
	Invoke(ctx context.Context, op *Operation, in, out any) error
	Service() ServiceInfo
}
