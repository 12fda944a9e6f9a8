// Package http implements connection.Connection over net/http for the
// AWS JSON and REST-JSON protocols.
package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"

	"github.com/awsjson/awsjson.go/internal/codec"
	"github.com/awsjson/awsjson.go/pkg/connection"
	"github.com/awsjson/awsjson.go/pkg/constants"
	"github.com/awsjson/awsjson.go/pkg/logger"
	"github.com/awsjson/awsjson.go/pkg/metrics"
)

type Connection struct {
	BaseURL     *url.URL
	Marshaler   codec.Marshaler
	Unmarshaler codec.Unmarshaler

	service   connection.ServiceInfo
	region    string
	userAgent string
	logger    logger.Logger
	metrics   *metrics.Metrics
	signer    connection.Signer
	handlers  []connection.RequestHandler
	creds     credentials.Value

	httpClient *http.Client
}

var _ connection.Connection = (*Connection)(nil)

// New creates a connection from p. Credentials, when configured, are resolved here, once.
func New(p *connection.Config) (*Connection, error) {
	if p.Service.Name == "" {
		return nil, constants.ErrNoService
	}
	if p.Marshaler == nil {
		return nil, constants.ErrNoMarshaler
	}
	if p.Unmarshaler == nil {
		return nil, constants.ErrNoUnmarshaler
	}
	base, err := p.Endpoint()
	if err != nil {
		return nil, err
	}
	if base.Host == "" {
		return nil, constants.ErrNoEndpoint
	}
	switch p.Service.Protocol {
	case connection.ProtocolJSON, connection.ProtocolRESTJSON:
	default:
		return nil, constants.ErrUnknownProtocol
	}

	con := Connection{
		BaseURL:     base,
		Marshaler:   p.Marshaler,
		Unmarshaler: p.Unmarshaler,
		service:     p.Service,
		region:      p.Region,
		userAgent:   p.UserAgent,
		logger:      p.Logger,
		metrics:     p.Metrics,
		signer:      p.Signer,
		handlers:    p.Handlers,
		httpClient:  p.HTTPClient,
	}
	if con.logger == nil {
		con.logger = logger.Nop()
	}
	if con.userAgent == "" {
		con.userAgent = constants.DefaultUserAgent
	}
	if con.httpClient == nil {
		timeout := p.Timeout
		if timeout == 0 {
			timeout = constants.DefaultHTTPTimeout
		}
		con.httpClient = &http.Client{
			Timeout: timeout, // Set a default timeout to avoid hanging requests
		}
	}
	if p.Credentials != nil {
		con.creds, err = p.Credentials.Get()
		if err != nil {
			return nil, connection.NewRequestError("NoCredentialProviders", "failed to resolve credentials", err)
		}
	}

	return &con, nil
}

// SetTimeout sets the timeout of every call. The HTTP client in use is
// copied first, so a client shared with other code is left untouched.
func (c *Connection) SetTimeout(timeout time.Duration) *Connection {
	client := *c.httpClient
	client.Timeout = timeout
	c.httpClient = &client
	return c
}

// SetHTTPClient replaces the HTTP client used to send requests.
func (c *Connection) SetHTTPClient(client *http.Client) *Connection {
	c.httpClient = client
	return c
}

func (c *Connection) Service() connection.ServiceInfo {
	return c.service
}

// Invoke encodes in, sends the operation and decodes the response into out.
// out may be nil for operations without a result.
func (c *Connection) Invoke(ctx context.Context, op *connection.Operation, in, out any) error {
	if op == nil {
		return constants.ErrNoOperation
	}
	start := time.Now()
	c.metrics.ObserveRequest(c.service.Name, op.Name)
	defer func() {
		c.metrics.ObserveExecute(c.service.Name, op.Name, time.Since(start))
	}()

	req, err := c.newRequest(ctx, op, in)
	if err != nil {
		return c.fail(op, err)
	}

	c.logger.Debug("sending request",
		"service", c.service.Name, "operation", op.Name, "method", req.Method, "url", req.URL.String())

	status, header, respBody, err := c.MakeRequest(req)
	if err != nil {
		return c.fail(op, err)
	}
	c.metrics.ObserveResponseSize(c.service.Name, op.Name, len(respBody))

	if status < 200 || status >= 300 {
		return c.fail(op, c.serviceError(op, status, header, respBody))
	}

	c.logger.Debug("received response",
		"service", c.service.Name, "operation", op.Name, "status", status, "request_id", requestID(header))

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := c.Unmarshaler.Unmarshal(respBody, out); err != nil {
		return c.fail(op, connection.SerializationError("failed to decode "+op.Name+" response", err))
	}
	return nil
}

// MakeRequest sends req and returns the status, headers and the whole body.
func (c *Connection) MakeRequest(req *http.Request) (int, http.Header, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return 0, nil, nil, connection.NewRequestError(constants.ErrCodeRequestCanceled, "request context canceled", ctxErr)
		}
		return 0, nil, nil, connection.NewRequestError(constants.ErrCodeRequestError, "send request failed", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, connection.NewRequestError(constants.ErrCodeRequestError, "failed to read response body", err)
	}

	return resp.StatusCode, resp.Header, respBytes, nil
}

func (c *Connection) fail(op *connection.Operation, err error) error {
	code := constants.ErrCodeRequestError
	var svcErr *connection.ServiceError
	var reqErr *connection.RequestError
	switch {
	case errors.As(err, &svcErr):
		code = svcErr.Code()
	case errors.As(err, &reqErr):
		code = reqErr.Code()
	}
	c.metrics.ObserveFailure(c.service.Name, op.Name, code)
	c.logger.Error("operation failed", "service", c.service.Name, "operation", op.Name, "code", code, "error", err)
	return err
}
