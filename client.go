package awsjson

import (
	"context"

	"github.com/awsjson/awsjson.go/pkg/connection"
	"github.com/awsjson/awsjson.go/pkg/connection/http"
)

// Client executes the operations of one service over a connection.
// It is safe for concurrent use; every call is an independent exchange.
type Client struct {
	con connection.Connection
}

// New creates a Client over HTTP for the service in conf.
func New(conf *connection.Config) (*Client, error) {
	con, err := http.New(conf)
	if err != nil {
		return nil, err
	}
	return FromConnection(con), nil
}

// FromConnection creates a Client over an existing connection.
//
// This is useful when you want to plug in a connection of your own,
// e.g. one that records requests in tests.
func FromConnection(con connection.Connection) *Client {
	return &Client{con: con}
}

// Connection returns the underlying connection.
func (c *Client) Connection() connection.Connection {
	return c.con
}

// Service returns the service the client talks to.
func (c *Client) Service() connection.ServiceInfo {
	return c.con.Service()
}

// Invoke sends op with in as the request record and decodes the result record.
// A nil in is sent as an empty request.
func Invoke[Out, In any](ctx context.Context, c *Client, op *connection.Operation, in *In) (*Out, error) {
	if in == nil {
		in = new(In)
	}
	out := new(Out)
	if err := c.con.Invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// InvokeVoid sends op for operations that have no result record.
func InvokeVoid[In any](ctx context.Context, c *Client, op *connection.Operation, in *In) error {
	if in == nil {
		in = new(In)
	}
	return c.con.Invoke(ctx, op, in, nil)
}
