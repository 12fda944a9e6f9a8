package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/uuid"

	"github.com/awsjson/awsjson.go/internal/codec"
	"github.com/awsjson/awsjson.go/pkg/connection"
	"github.com/awsjson/awsjson.go/pkg/constants"
)

const (
	locationURI    = "uri"
	locationQuery  = "querystring"
	locationHeader = "header"
)

func (c *Connection) newRequest(ctx context.Context, op *connection.Operation, in any) (*http.Request, error) {
	marshalStart := time.Now()
	body, err := c.Marshaler.Marshal(in)
	if err != nil {
		return nil, connection.SerializationError("failed to encode "+op.Name+" request", err)
	}

	var bindings []codec.Binding
	if c.service.Protocol == connection.ProtocolRESTJSON {
		if binder, ok := c.Marshaler.(codec.Binder); ok {
			bindings, err = binder.Bindings(in)
			if err != nil {
				return nil, connection.SerializationError("failed to bind "+op.Name+" request", err)
			}
		}
	}
	c.metrics.ObserveMarshal(c.service.Name, op.Name, time.Since(marshalStart))

	u, err := c.resolveURL(op, bindings)
	if err != nil {
		return nil, connection.SerializationError("failed to build "+op.Name+" request uri", err)
	}

	method := op.Method()
	var req *http.Request
	if c.hasBody(method) {
		req, err = http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	} else {
		body = nil
		req, err = http.NewRequestWithContext(ctx, method, u.String(), http.NoBody)
	}
	if err != nil {
		return nil, connection.NewRequestError(constants.ErrCodeRequestError, "failed to create request", err)
	}

	switch c.service.Protocol {
	case connection.ProtocolJSON:
		version := c.service.JSONVersion
		if version == "" {
			version = "1.1"
		}
		req.Header.Set(constants.HeaderContentType, "application/x-amz-json-"+version)
		req.Header.Set(constants.HeaderTarget, c.service.TargetPrefix+"."+op.Name)
	case connection.ProtocolRESTJSON:
		if body != nil {
			req.Header.Set(constants.HeaderContentType, "application/json")
		}
	}
	for _, b := range bindings {
		if b.Location == locationHeader {
			req.Header.Set(b.Name, b.Value)
		}
	}
	req.Header.Set(constants.HeaderUserAgent, c.userAgent)
	if id, err := uuid.NewV4(); err == nil {
		req.Header.Set(constants.HeaderInvocationID, id.String())
	}

	for _, h := range c.handlers {
		if err := h(req); err != nil {
			return nil, connection.NewRequestError(constants.ErrCodeRequestError, "request handler failed", err)
		}
	}
	if c.signer != nil {
		if err := c.signer.Sign(req, body, c.creds, c.service, c.region); err != nil {
			return nil, connection.NewRequestError("SigningError", "failed to sign request", err)
		}
	}

	return req, nil
}

// hasBody reports whether a request with method carries the JSON document.
// JSON RPC always does; REST-JSON only for methods that take a payload.
func (c *Connection) hasBody(method string) bool {
	if c.service.Protocol == connection.ProtocolJSON {
		return true
	}
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return false
	default:
		return true
	}
}

func (c *Connection) resolveURL(op *connection.Operation, bindings []codec.Binding) (*url.URL, error) {
	template := op.URI()
	rawQuery := ""
	if i := strings.IndexByte(template, '?'); i >= 0 {
		template, rawQuery = template[:i], template[i+1:]
	}

	labels := make(map[string]string)
	for _, b := range bindings {
		if b.Location == locationURI {
			labels[b.Name] = b.Value
		}
	}
	path, err := expandURI(template, labels)
	if err != nil {
		return nil, err
	}

	u := *c.BaseURL
	escaped := strings.TrimRight(u.EscapedPath(), "/") + path
	u.Path, err = url.PathUnescape(escaped)
	if err != nil {
		return nil, err
	}
	u.RawPath = escaped

	q := u.Query()
	if rawQuery != "" {
		fixed, err := url.ParseQuery(rawQuery)
		if err != nil {
			return nil, err
		}
		for k, vs := range fixed {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
	}
	for _, b := range bindings {
		if b.Location == locationQuery {
			q.Add(b.Name, b.Value)
		}
	}
	u.RawQuery = q.Encode()
	return &u, nil
}

// expandURI substitutes {label} and greedy {label+} segments of template.
// Values are path-escaped; greedy labels keep their slashes.
func expandURI(template string, labels map[string]string) (string, error) {
	var sb strings.Builder
	for {
		open := strings.IndexByte(template, '{')
		if open < 0 {
			sb.WriteString(template)
			return sb.String(), nil
		}
		end := strings.IndexByte(template[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("unterminated label in uri template %q", template)
		}
		end += open
		sb.WriteString(template[:open])

		name := template[open+1 : end]
		greedy := strings.HasSuffix(name, "+")
		name = strings.TrimSuffix(name, "+")
		value, ok := labels[name]
		if !ok || value == "" {
			return "", fmt.Errorf("%w: %s", constants.ErrMissingURILabel, name)
		}
		if greedy {
			segments := strings.Split(value, "/")
			for i, s := range segments {
				segments[i] = url.PathEscape(s)
			}
			sb.WriteString(strings.Join(segments, "/"))
		} else {
			sb.WriteString(url.PathEscape(value))
		}
		template = template[end+1:]
	}
}
