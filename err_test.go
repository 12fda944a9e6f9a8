package awsjson

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/awsjson/awsjson.go/pkg/connection"
)

func TestErrorPredicates(t *testing.T) {
	svcErr := connection.NewServiceError("Ping", "Ping", "PingFault", "no pong", 409, "req-1", true)
	reqErr := connection.NewRequestError("RequestError", "send request failed", context.DeadlineExceeded)

	tests := []struct {
		name       string
		err        error
		code       string
		isService  bool
		isRequest  bool
		isDeadline bool
	}{
		{name: "nil", err: nil},
		{name: "plain", err: errors.New("plain")},
		{name: "service", err: svcErr, code: "PingFault", isService: true},
		{name: "wrapped service", err: pkgerrors.Wrap(svcErr, "ping"), code: "PingFault", isService: true},
		{name: "request", err: reqErr, code: "RequestError", isRequest: true, isDeadline: true},
		{name: "serialization", err: connection.SerializationError("bad", nil), code: "SerializationError", isRequest: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCode(tt.err))
			assert.Equal(t, tt.code != "", IsErrorCode(tt.err, tt.code))
			assert.False(t, IsErrorCode(tt.err, "Other"))
			_, ok := AsServiceError(tt.err)
			assert.Equal(t, tt.isService, ok)
			assert.Equal(t, tt.isRequest, IsRequestError(tt.err))
			assert.Equal(t, tt.isDeadline, errors.Is(tt.err, context.DeadlineExceeded))
		})
	}
}

func TestServiceErrorMessage(t *testing.T) {
	err := connection.NewServiceError("Ping", "Ping", "PingFault", "no pong", 409, "req-1", true)
	assert.Contains(t, err.Error(), "Ping Ping: PingFault: no pong")
	assert.Contains(t, err.Error(), "status code: 409, request id: req-1")
}
