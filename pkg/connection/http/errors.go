package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/buger/jsonparser"

	"github.com/awsjson/awsjson.go/pkg/connection"
	"github.com/awsjson/awsjson.go/pkg/constants"
)

var (
	errorCodeKeys    = []string{"__type", "code", "Code"}
	errorMessageKeys = []string{"message", "Message", "errorMessage"}
)

func (c *Connection) serviceError(op *connection.Operation, status int, header http.Header, body []byte) error {
	code, message := parseErrorBody(body)
	if h := header.Get(constants.HeaderErrorType); h != "" {
		code = h
	}
	code = sanitizeErrorCode(code)
	if code == "" {
		code = strings.ReplaceAll(http.StatusText(status), " ", "")
	}
	if code == "" {
		code = fmt.Sprintf("HTTP%d", status)
	}

	return connection.NewServiceError(
		c.service.Name,
		op.Name,
		code,
		message,
		status,
		requestID(header),
		op.Declares(&c.service, code),
	)
}

// parseErrorBody extracts the error code and message of a JSON error document.
// A body that is not JSON yields empty strings.
func parseErrorBody(body []byte) (code, message string) {
	for _, key := range errorCodeKeys {
		if v, err := jsonparser.GetString(body, key); err == nil && v != "" {
			code = v
			break
		}
	}
	for _, key := range errorMessageKeys {
		if v, err := jsonparser.GetString(body, key); err == nil && v != "" {
			message = v
			break
		}
	}
	return code, message
}

// sanitizeErrorCode strips the namespace ("ns#Code") and URI suffix ("Code:http://...") of an error type.
func sanitizeErrorCode(code string) string {
	if i := strings.IndexByte(code, ':'); i >= 0 {
		code = code[:i]
	}
	if i := strings.LastIndexByte(code, '#'); i >= 0 {
		code = code[i+1:]
	}
	return strings.TrimSpace(code)
}

func requestID(header http.Header) string {
	if header == nil {
		return ""
	}
	if id := header.Get(constants.HeaderRequestID); id != "" {
		return id
	}
	return header.Get(constants.HeaderAlternateReqID)
}
