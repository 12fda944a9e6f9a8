package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/awsjson/awsjson.go/jsonwire"
	"github.com/awsjson/awsjson.go/pkg/connection"
)

// Connection answers operations from canned response documents without any
// network round trip. Requests are still encoded so that the codec is exercised.
type Connection struct {
	service connection.ServiceInfo
	codec   *jsonwire.Codec

	mu        sync.RWMutex
	responses map[string][]byte
}

var _ connection.Connection = (*Connection)(nil)

func Create(service connection.ServiceInfo) *Connection {
	return &Connection{
		service:   service,
		codec:     jsonwire.New(),
		responses: make(map[string][]byte),
	}
}

// Respond sets the document returned for operation.
func (c *Connection) Respond(operation string, doc []byte) *Connection {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses[operation] = doc
	return c
}

func (c *Connection) Service() connection.ServiceInfo {
	return c.service
}

func (c *Connection) Invoke(_ context.Context, op *connection.Operation, in, out any) error {
	if _, err := c.codec.Marshal(in); err != nil {
		return err
	}

	c.mu.RLock()
	doc, ok := c.responses[op.Name]
	c.mu.RUnlock()
	if !ok {
		return fmt.Errorf("mock: no response for %s", op.Name)
	}
	if out == nil {
		return nil
	}
	return c.codec.Unmarshal(doc, out)
}
